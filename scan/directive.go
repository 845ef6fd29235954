package scan

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/oaserrors"
)

// Prefix starts every directive comment.
const Prefix = "//oas:"

// continuation marks a line that extends the previous directive's value.
const continuation = Prefix + "+"

// directive is one parsed directive comment, before its value is decoded.
type directive struct {
	kind  decl.Kind
	arg   string
	value string
	line  int
}

// directives extracts the directives of a comment group in order. Lines
// that are not directives are ignored.
func directives(fset *token.FileSet, cg *ast.CommentGroup) ([]directive, error) {
	if cg == nil {
		return nil, nil
	}
	var (
		out  []directive
		errs []error
	)
	for _, c := range cg.List {
		text := strings.TrimRight(c.Text, " \t")
		line := fset.Position(c.Slash).Line
		switch {
		case strings.HasPrefix(text, continuation):
			if len(out) == 0 {
				errs = append(errs, &oaserrors.ParseError{Line: line, Message: "continuation line without a directive"})
				continue
			}
			last := &out[len(out)-1]
			last.value += "\n" + strings.TrimPrefix(strings.TrimPrefix(text, continuation), " ")
		case strings.HasPrefix(text, Prefix):
			d, err := parseDirective(strings.TrimPrefix(text, Prefix))
			if err != nil {
				errs = append(errs, &oaserrors.ParseError{Line: line, Message: err.Error()})
				continue
			}
			d.line = line
			out = append(out, d)
		}
	}
	return out, errors.Join(errs...)
}

// parseDirective parses "kind(arg) value" with the prefix removed.
func parseDirective(s string) (directive, error) {
	head, value, _ := strings.Cut(s, " ")
	var d directive
	if i := strings.IndexByte(head, '('); i >= 0 {
		if !strings.HasSuffix(head, ")") {
			return d, fmt.Errorf("unterminated argument in %q", head)
		}
		d.arg = strings.TrimSpace(head[i+1 : len(head)-1])
		if d.arg == "" {
			return d, fmt.Errorf("empty argument in %q", head)
		}
		head = head[:i]
	}
	d.kind = decl.Kind(head)
	if _, err := decl.New(d.kind); err != nil {
		return d, fmt.Errorf("unknown annotation kind %q", head)
	}
	d.value = strings.TrimSpace(value)
	return d, nil
}

// decode turns a directive into its annotation. YAML error positions are
// shifted to the directive's line.
func (d directive) decode() (decl.Annotation, error) {
	ann, err := decl.Decode(d.kind, []byte(d.value))
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) {
			if pe.Line > 0 {
				pe.Line += d.line - 1
			} else {
				pe.Line = d.line
			}
			pe.Column = 0
		}
		return nil, err
	}
	return ann, nil
}

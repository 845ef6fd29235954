package scan

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/oaserrors"
	"github.com/erraggy/oasresolve/resolver"
)

// Option configures a scan.
type Option func(*config) error

type config struct {
	tests  bool
	root   string
	logger resolver.Logger
}

// WithTests includes _test.go files and test packages.
func WithTests(enabled bool) Option {
	return func(c *config) error {
		c.tests = enabled
		return nil
	}
}

// WithRoot sets the directory that sources are made relative to. It
// defaults to the scanned directory.
func WithRoot(dir string) Option {
	return func(c *config) error {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return &oaserrors.ConfigError{Option: "Root", Value: dir, Cause: err}
		}
		c.root = abs
		return nil
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l resolver.Logger) Option {
	return func(c *config) error {
		if l == nil {
			l = resolver.NopLogger{}
		}
		c.logger = l
		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{logger: resolver.NopLogger{}}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Result is the outcome of a scan.
type Result struct {
	// Declarations are the records found, in Seq order.
	Declarations decl.Set
	// Packages counts the packages scanned.
	Packages int
	// Files counts the files scanned.
	Files int
}

// Packages loads the packages matching patterns (default ".") relative to
// dir and collects their directives. Malformed directives and package load
// errors are returned together as an oaserrors.Errors batch alongside
// every declaration that could be read.
func Packages(ctx context.Context, dir string, patterns []string, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "Dir", Value: dir, Cause: err}
	}
	if cfg.root == "" {
		cfg.root = absDir
	}
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pcfg := &packages.Config{
		Context: ctx,
		Fset:    token.NewFileSet(),
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:     absDir,
		Tests:   cfg.tests,
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: dir, Message: "loading packages", Cause: err}
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].ID < pkgs[j].ID })

	s := &scanner{cfg: cfg, fset: pcfg.Fset, seen: make(map[string]bool)}
	res := &Result{}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			s.errs = append(s.errs, &oaserrors.ParseError{Path: pkg.PkgPath, Message: e.Msg})
		}
		files := append([]*ast.File(nil), pkg.Syntax...)
		sort.Slice(files, func(i, j int) bool { return s.filename(files[i]) < s.filename(files[j]) })
		res.Packages++
		for _, f := range files {
			// test variants of a package repeat its files
			name := s.filename(f)
			if s.seen[name] {
				continue
			}
			s.seen[name] = true
			res.Files++
			s.file(f)
		}
		cfg.logger.Debug("scanned package", "package", pkg.PkgPath, "files", len(files))
	}
	res.Declarations = s.set
	cfg.logger.Info("scan complete", "packages", res.Packages, "files", res.Files, "declarations", len(s.set), "errors", len(s.errs))
	return res, s.errs.ErrOrNil()
}

// ParseFile collects the directives of a single parsed file. Sources are
// reported relative to the configured root, or by base name.
func ParseFile(fset *token.FileSet, file *ast.File, opts ...Option) (decl.Set, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	s := &scanner{cfg: cfg, fset: fset, seen: make(map[string]bool)}
	s.file(file)
	return s.set, s.errs.ErrOrNil()
}

// scanner numbers records across every file of one scan.
type scanner struct {
	cfg  *config
	fset *token.FileSet
	seen map[string]bool
	set  decl.Set
	errs oaserrors.Errors
}

func (s *scanner) filename(f *ast.File) string {
	return s.fset.Position(f.Package).Filename
}

// relName returns filename relative to the root, or its base name when it
// lies outside the root.
func (s *scanner) relName(filename string) string {
	if s.cfg.root != "" {
		if rel, err := filepath.Rel(s.cfg.root, filename); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.Base(filename)
}

// source renders a position as "file:line".
func (s *scanner) source(filename string, line int) string {
	return fmt.Sprintf("%s:%d", s.relName(filename), line)
}

func (s *scanner) file(f *ast.File) {
	pkg := f.Name.Name
	s.emit(f, decl.Scope{Package: pkg}, f.Doc, nil)
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				s.emit(f, decl.Scope{Package: pkg, Type: ts.Name.Name}, doc, nil)
			}
		case *ast.FuncDecl:
			scope := decl.Scope{Package: pkg, Method: d.Name.Name}
			if d.Recv != nil && len(d.Recv.List) > 0 {
				scope.Type = receiverType(d.Recv.List[0].Type)
			}
			s.emit(f, scope, d.Doc, paramNames(d.Type))
		}
	}
}

// emit decodes the directives of one doc comment. params lists the
// argument names a directive may select; nil means arguments are not
// allowed at this scope.
func (s *scanner) emit(f *ast.File, scope decl.Scope, doc *ast.CommentGroup, params []string) {
	filename := s.filename(f)
	dirs, err := directives(s.fset, doc)
	if err != nil {
		s.fail(filename, err)
	}
	for _, d := range dirs {
		at := scope
		if d.arg != "" {
			if scope.Method == "" {
				s.fail(filename, &oaserrors.ParseError{Line: d.line, Message: fmt.Sprintf("%s(%s): arguments are only allowed on functions", d.kind, d.arg)})
				continue
			}
			if !slices.Contains(params, d.arg) {
				s.fail(filename, &oaserrors.ParseError{Line: d.line, Message: fmt.Sprintf("%s(%s): %s has no parameter %q", d.kind, d.arg, scope.Method, d.arg)})
				continue
			}
			at.Arg = d.arg
		}
		ann, err := d.decode()
		if err != nil {
			s.fail(filename, err)
			continue
		}
		s.set = append(s.set, decl.Declaration{
			Scope:      at,
			Seq:        len(s.set) + 1,
			Source:     s.source(filename, d.line),
			Annotation: ann,
		})
	}
}

// fail records an error, filling in the file name of parse errors.
func (s *scanner) fail(filename string, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			s.fail(filename, e)
		}
		return
	}
	var pe *oaserrors.ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = s.relName(filename)
	}
	s.cfg.logger.Warn("malformed directive", "error", err.Error())
	s.errs = append(s.errs, err)
}

// receiverType returns the type name of a method receiver, without pointer
// or type parameters.
func receiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverType(t.X)
	case *ast.ParenExpr:
		return receiverType(t.X)
	case *ast.IndexExpr:
		return receiverType(t.X)
	case *ast.IndexListExpr:
		return receiverType(t.X)
	case *ast.Ident:
		return t.Name
	}
	return ""
}

func paramNames(ft *ast.FuncType) []string {
	names := []string{}
	if ft.Params == nil {
		return names
	}
	for _, field := range ft.Params.List {
		for _, n := range field.Names {
			if n.Name != "_" {
				names = append(names, n.Name)
			}
		}
	}
	return names
}

// Package report summarizes resolution results for the command line and the
// MCP server. A report carries diagnostics and counts, never the document.
package report

import (
	"errors"
	"strings"

	"github.com/erraggy/oasresolve/internal/maputil"
	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/oaserrors"
	"github.com/erraggy/oasresolve/resolver"
)

// Diagnostic is one error or warning.
type Diagnostic struct {
	Severity string `json:"severity" yaml:"severity"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

// Operation summarizes one built operation.
type Operation struct {
	Method      string   `json:"method" yaml:"method"`
	Path        string   `json:"path" yaml:"path"`
	OperationID string   `json:"operation_id,omitempty" yaml:"operation_id,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Report is the summary of one resolution.
type Report struct {
	OK           bool            `json:"ok" yaml:"ok"`
	OpenAPI      string          `json:"openapi,omitempty" yaml:"openapi,omitempty"`
	Title        string          `json:"title,omitempty" yaml:"title,omitempty"`
	Version      string          `json:"version,omitempty" yaml:"version,omitempty"`
	Declarations int             `json:"declarations" yaml:"declarations"`
	Stats        *resolver.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Operations   []Operation     `json:"operations,omitempty" yaml:"operations,omitempty"`
	Errors       []Diagnostic    `json:"errors,omitempty" yaml:"errors,omitempty"`
	Unresolved   []Diagnostic    `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
	Warnings     []Diagnostic    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Counts       map[string]int  `json:"counts,omitempty" yaml:"counts,omitempty"`
}

// Build summarizes a resolution. err is the error returned by Resolve; when
// it is set res is ignored and the report lists the global errors.
func Build(res *resolver.Result, err error) *Report {
	r := &Report{}
	if err != nil {
		r.Errors = diagnostics(err)
		r.Counts = countBySeverity(r)
		return r
	}
	r.OK = len(res.Errors) == 0
	r.Stats = &res.Stats
	r.Declarations = res.Stats.Declarations
	if doc := res.Document; doc != nil {
		r.OpenAPI = doc.OpenAPI
		if doc.Info != nil {
			r.Title = doc.Info.Title
			r.Version = doc.Info.Version
		}
		for _, ref := range doc.Operations() {
			r.Operations = append(r.Operations, Operation{
				Method:      strings.ToUpper(ref.Method),
				Path:        ref.Path,
				OperationID: ref.Operation.OperationID,
				Tags:        ref.Operation.Tags,
			})
		}
	}
	for _, e := range res.Errors {
		r.Errors = append(r.Errors, diagnostic(e))
	}
	for _, u := range res.Unresolved {
		r.Unresolved = append(r.Unresolved, diagnostic(u))
	}
	for _, w := range res.Warnings {
		r.Warnings = append(r.Warnings, Diagnostic{
			Severity: w.Severity.String(),
			Category: string(w.Category),
			Path:     w.Path,
			Source:   w.Source,
			Message:  w.Message,
		})
	}
	r.Counts = countBySeverity(r)
	return r
}

// Filter drops warnings below threshold. Errors and unresolved references are kept.
func (r *Report) Filter(threshold severity.Severity) {
	kept := r.Warnings[:0]
	for _, w := range r.Warnings {
		s, err := severity.Parse(w.Severity)
		if err != nil || s.AtLeast(threshold) {
			kept = append(kept, w)
		}
	}
	r.Warnings = kept
	r.Counts = countBySeverity(r)
}

func diagnostics(err error) []Diagnostic {
	var out []Diagnostic
	var batch oaserrors.Errors
	if errors.As(err, &batch) {
		for _, e := range batch {
			out = append(out, diagnostic(e))
		}
		return out
	}
	return []Diagnostic{diagnostic(err)}
}

func diagnostic(err error) Diagnostic {
	d := Diagnostic{
		Severity: resolver.Classify(err).String(),
		Category: category(err),
		Message:  err.Error(),
	}
	d.Path, d.Source = locate(err)
	return d
}

// locate returns the element path and declaration source an error names.
func locate(err error) (path, source string) {
	var (
		dup  *oaserrors.DuplicateDefinitionError
		ref  *oaserrors.UnresolvedReferenceError
		cf   *oaserrors.ConflictingFieldError
		dek  *oaserrors.DuplicateExtensionKeyError
		iek  *oaserrors.InvalidExtensionKeyError
		dop  *oaserrors.DuplicateOperationIDError
		inv  *oaserrors.InvalidDeclarationError
		perr *oaserrors.ParseError
	)
	switch {
	case errors.As(err, &dup):
		return "", strings.Join(dup.Sources, ", ")
	case errors.As(err, &ref):
		return "", ref.Source
	case errors.As(err, &cf):
		return cf.Path, cf.Source
	case errors.As(err, &dek):
		return dek.Path, strings.Join(dek.Sources, ", ")
	case errors.As(err, &iek):
		return iek.Path, iek.Source
	case errors.As(err, &dop):
		return dop.Path, dop.Source
	case errors.As(err, &inv):
		return "", inv.Source
	case errors.As(err, &perr):
		return perr.Path, ""
	}
	return "", ""
}

// category names the error type the way resolver warnings name theirs.
func category(err error) string {
	switch {
	case errors.Is(err, oaserrors.ErrDuplicateDefinition):
		return "duplicate_definition"
	case errors.Is(err, oaserrors.ErrUnresolvedReference):
		return "unresolved_reference"
	case errors.Is(err, oaserrors.ErrConflictingField):
		return "conflicting_field"
	case errors.Is(err, oaserrors.ErrDuplicateExtensionKey):
		return "duplicate_extension_key"
	case errors.Is(err, oaserrors.ErrInvalidExtensionKey):
		return "invalid_extension_key"
	case errors.Is(err, oaserrors.ErrDuplicateOperationID):
		return "duplicate_operation_id"
	case errors.Is(err, oaserrors.ErrInvalidDeclaration):
		return "invalid_declaration"
	case errors.Is(err, oaserrors.ErrParse):
		return "parse"
	case errors.Is(err, oaserrors.ErrConfig):
		return "config"
	}
	return ""
}

func countBySeverity(r *Report) map[string]int {
	counts := make(map[string]int)
	for _, group := range [][]Diagnostic{r.Errors, r.Unresolved, r.Warnings} {
		for _, d := range group {
			counts[d.Severity]++
		}
	}
	return counts
}

// Categories returns the distinct diagnostic categories in the report,
// sorted.
func (r *Report) Categories() []string {
	seen := make(map[string]bool)
	for _, group := range [][]Diagnostic{r.Errors, r.Unresolved, r.Warnings} {
		for _, d := range group {
			if d.Category != "" {
				seen[d.Category] = true
			}
		}
	}
	return maputil.SortedKeys(seen)
}

// Add records errors found outside resolution, such as malformed directives.
// An oaserrors.Errors batch is expanded.
func (r *Report) Add(err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, diagnostics(err)...)
	r.OK = false
	r.Counts = countBySeverity(r)
}

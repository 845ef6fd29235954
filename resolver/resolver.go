package resolver

import (
	"fmt"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/internal/naming"
	"github.com/erraggy/oasresolve/model"
	"github.com/erraggy/oasresolve/oaserrors"
)

// Resolver turns declaration sets into OpenAPI documents. A Resolver is
// immutable after New and safe for concurrent use; every Resolve call works
// on its own state.
type Resolver struct {
	cfg   *Config
	namer *naming.Namer
}

// New creates a Resolver. Invalid options return an *oaserrors.ConfigError.
func New(opts ...Option) (*Resolver, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	namer := naming.NewNamer(cfg.SchemaNaming)
	if cfg.SchemaNameTemplate != "" {
		n, err := namer.WithTemplate(cfg.SchemaNameTemplate)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: "SchemaNameTemplate", Value: cfg.SchemaNameTemplate, Cause: err}
		}
		namer = n
	}
	return &Resolver{cfg: cfg, namer: namer}, nil
}

// Resolve is a convenience wrapper around New and (*Resolver).Resolve.
func Resolve(set decl.Set, opts ...Option) (*Result, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Resolve(set)
}

// Result is the outcome of a successful resolution.
type Result struct {
	// Document is the frozen document. Callers own it; it shares no memory
	// with the input declarations.
	Document *model.Document
	// Errors holds element-local errors. Each one names an element that was
	// dropped (or an extension key that was dropped) from Document.
	Errors oaserrors.Errors
	// Unresolved lists references carried into Document as $ref
	// placeholders without a local definition.
	Unresolved []*oaserrors.UnresolvedReferenceError
	// Warnings explain non-fatal choices (ignored declarations, defaults).
	Warnings []*Warning
	// Stats summarizes the resolution.
	Stats Stats
}

// Err returns the element-local errors as one error, or nil.
func (r *Result) Err() error {
	return r.Errors.ErrOrNil()
}

// Stats counts what a resolution produced and dropped.
type Stats struct {
	Declarations int
	Operations   int
	Paths        int
	Components   int
	Tags         int
	// Hidden counts declarations and nested elements removed as hidden.
	Hidden int
	// Dropped counts elements removed because of element-local errors.
	Dropped    int
	Unresolved int
}

// Resolve runs the phases collect, hidden, merge, refs and freeze over set.
//
// Document-global errors (oaserrors.DuplicateDefinitionError) abort the
// build: Resolve returns a nil Result and an oaserrors.Errors batch holding
// every global error found. Otherwise the Result carries the document and
// the batch of element-local errors; use Result.Err to check them.
func (r *Resolver) Resolve(set decl.Set) (*Result, error) {
	p := newPass(r, set)
	for _, step := range []struct {
		phase phase
		run   func()
	}{
		{phaseCollected, p.collect},
		{phaseFiltered, p.filterHidden},
		{phaseMerged, p.merge},
		{phaseResolved, p.resolveRefs},
		{phaseFrozen, p.freeze},
	} {
		if err := p.advance(step.phase); err != nil {
			return nil, err
		}
		step.run()
		if len(p.global) > 0 {
			p.log.Error("resolution aborted", "phase", step.phase.String(), "errors", len(p.global))
			return nil, p.global
		}
	}
	return p.result(), nil
}

// phase is the resolution state machine. Phases only move forward.
type phase int

const (
	phaseNew phase = iota
	phaseCollected
	phaseFiltered
	phaseMerged
	phaseResolved
	phaseFrozen
)

func (ph phase) String() string {
	switch ph {
	case phaseNew:
		return "new"
	case phaseCollected:
		return "collect"
	case phaseFiltered:
		return "hidden"
	case phaseMerged:
		return "merge"
	case phaseResolved:
		return "refs"
	case phaseFrozen:
		return "freeze"
	default:
		return fmt.Sprintf("phase(%d)", int(ph))
	}
}

// pass is the state of one Resolve call. It is never shared.
type pass struct {
	cfg   *Config
	namer *naming.Namer
	log   Logger
	phase phase

	input decl.Set

	// collect
	decls   decl.Set
	byScope map[decl.Scope][]decl.Declaration
	scopes  []decl.Scope

	// hidden
	hiddenTypes map[string]bool

	// merge
	levels map[decl.Scope]*fragment
	ops    []*mergedOp
	docDef *docFragment

	// refs
	buckets     map[bucketKey]*bucket
	bucketKeys  []bucketKey
	typeSchemas map[string]string
	tagList     []string
	doc         *model.Document

	global     oaserrors.Errors
	errs       oaserrors.Errors
	unresolved []*oaserrors.UnresolvedReferenceError
	seenRefs   map[string]bool
	warnings   []*Warning
	stats      Stats
}

func newPass(r *Resolver, set decl.Set) *pass {
	return &pass{
		cfg:         r.cfg,
		namer:       r.namer,
		log:         r.cfg.Logger,
		input:       set,
		byScope:     make(map[decl.Scope][]decl.Declaration),
		hiddenTypes: make(map[string]bool),
		levels:      make(map[decl.Scope]*fragment),
		buckets:     make(map[bucketKey]*bucket),
		typeSchemas: make(map[string]string),
		seenRefs:    make(map[string]bool),
	}
}

// advance moves the pass to the next phase. Skipping or repeating a phase
// is an error.
func (p *pass) advance(next phase) error {
	if next != p.phase+1 {
		return fmt.Errorf("resolver: cannot enter phase %s after %s", next, p.phase)
	}
	p.log.Debug("entering phase", "phase", next.String())
	p.phase = next
	return nil
}

// fail records an element-local error; the caller drops the element.
func (p *pass) fail(err error) {
	p.log.Warn("element dropped", "error", err.Error())
	p.stats.Dropped++
	p.errs = append(p.errs, err)
}

func (p *pass) warn(w *Warning) {
	p.log.Debug("warning", "category", string(w.Category), "message", w.Message)
	p.warnings = append(p.warnings, w)
}

// unresolvedRef records a placeholder reference once per kind, ref and source.
func (p *pass) unresolvedRef(kind, ref, source string, external bool) {
	key := kind + "\x00" + ref + "\x00" + source
	if p.seenRefs[key] {
		return
	}
	p.seenRefs[key] = true
	p.log.Warn("unresolved reference", "kind", kind, "ref", ref, "source", source)
	p.unresolved = append(p.unresolved, &oaserrors.UnresolvedReferenceError{Kind: kind, Ref: ref, Source: source, External: external})
}

func (p *pass) result() *Result {
	p.stats.Declarations = len(p.input)
	p.stats.Unresolved = len(p.unresolved)
	return &Result{
		Document:   p.doc,
		Errors:     p.errs,
		Unresolved: p.unresolved,
		Warnings:   p.warnings,
		Stats:      p.stats,
	}
}

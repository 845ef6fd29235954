package resolver

import (
	"path"
	"reflect"
	"slices"
	"strings"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/model"
	"github.com/erraggy/oasresolve/oaserrors"
)

// mergedOp is one operation after precedence merging, before refs are
// resolved and the model is built.
type mergedOp struct {
	scope    decl.Scope
	method   string
	path     string
	seq      int
	source   string
	produces []string
	consumes []string
	frag     *fragment
	security *securityDecl
	// built is the operation placed in the document, nil when it was dropped.
	built *model.Operation
}

func (op *mergedOp) String() string {
	return strings.ToUpper(op.method) + " " + op.path
}

// merge builds the document-level fragment and one merged fragment per
// method scope that declares an endpoint.
func (p *pass) merge() {
	p.docDef = p.mergeDocument()

	var methods []decl.Scope
	seen := make(map[decl.Scope]bool)
	for _, s := range p.scopes {
		if s.Level() < decl.LevelMethod {
			continue
		}
		ms := s.MethodScope()
		if !seen[ms] {
			seen[ms] = true
			methods = append(methods, ms)
		}
	}

	for _, ms := range methods {
		if op := p.mergeOperation(ms); op != nil {
			p.ops = append(p.ops, op)
		}
	}
	p.log.Debug("merged operations", "count", len(p.ops))
}

func (p *pass) mergeOperation(ms decl.Scope) *mergedOp {
	ep, epDecl := p.endpoint(ms)
	if ep == nil {
		if d, ok := p.firstOperationDecl(ms); ok {
			p.warn(newMissingEndpointWarning(ms.String(), d.Location()))
		}
		return nil
	}
	if ep.Method == nil {
		p.fail(&oaserrors.InvalidDeclarationError{
			Kind: string(decl.KindEndpoint), Field: "method",
			Message: "an operation endpoint needs a method", Source: epDecl.Location(),
		})
		return nil
	}
	var typeEp *decl.Endpoint
	if ms.Type != "" {
		typeEp, _ = p.endpoint(ms.TypeScope())
	}
	pkgEp, _ := p.endpoint(ms.PackageScope())

	op := &mergedOp{
		scope:  ms,
		method: *ep.Method,
		path:   joinURLPath(endpointPath(pkgEp), endpointPath(typeEp), endpointPath(ep)),
		seq:    epDecl.Seq,
		source: epDecl.Location(),
	}
	for _, e := range []*decl.Endpoint{ep, typeEp, pkgEp} {
		if e == nil {
			continue
		}
		if op.produces == nil && e.Produces != nil {
			op.produces = e.Produces
		}
		if op.consumes == nil && e.Consumes != nil {
			op.consumes = e.Consumes
		}
	}

	acc := &fragment{}
	for _, lvl := range precedence(ms) {
		acc.inherit(p.level(lvl))
	}
	for _, lvl := range slices.Backward(precedence(ms)) {
		if f := p.level(lvl); f != nil && f.security != nil {
			op.security = f.security
			break
		}
	}
	acc.Parameters = p.checkParameters(acc.Parameters, op.String(), op.source)
	op.frag = acc
	return op
}

// precedence lists the levels merged into the operation of a method scope,
// outermost first. Functions declared outside a type have no type level.
func precedence(ms decl.Scope) []decl.Scope {
	if ms.Type == "" {
		return []decl.Scope{ms.PackageScope(), ms}
	}
	return []decl.Scope{ms.PackageScope(), ms.TypeScope(), ms}
}

// checkParameters enforces parameter identity and exclusivity on the
// parameters of one operation at path: name and location are required unless
// the parameter is a ref, path parameters are always required, and schema
// and content are exclusive.
func (p *pass) checkParameters(params []decl.Parameter, path, src string) []decl.Parameter {
	if params == nil {
		return nil
	}
	out := make([]decl.Parameter, 0, len(params))
	for _, prm := range params {
		if prm.Ref == nil {
			missing := ""
			switch {
			case prm.Name == nil:
				missing = "name"
			case prm.In == nil:
				missing = "in"
			}
			if missing != "" {
				p.fail(&oaserrors.InvalidDeclarationError{
					Kind: string(decl.KindParameter), Field: missing, Value: deref(prm.Name),
					Message: "required at " + path, Source: src,
				})
				continue
			}
		}
		if prm.Schema != nil && len(prm.Content) > 0 {
			p.fail(&oaserrors.ConflictingFieldError{
				Element: "parameter", Name: deref(prm.Name), In: deref(prm.In), Path: path,
				Fields: []string{"schema", "content"}, Source: src,
			})
			continue
		}
		if deref(prm.In) == model.ParamInPath {
			prm.Required = decl.Ptr(true)
		}
		out = append(out, prm)
	}
	return out
}

// level returns the merged contributions of one precedence level. Method
// levels include their arguments. Results are cached: each level is merged
// once per pass, so its extension collisions are reported once.
func (p *pass) level(s decl.Scope) *fragment {
	if f, ok := p.levels[s]; ok {
		return f
	}
	var decls decl.Set
	args := make(map[string]*argInfo)
	if s.Level() == decl.LevelMethod {
		for _, sc := range p.scopes {
			if sc.Level() == decl.LevelArg && sc.MethodScope() == s {
				args[sc.Arg] = newArgInfo(p.byScope[sc])
				decls = append(decls, p.byScope[sc]...)
			}
		}
	}
	decls = append(decls, p.byScope[s]...)
	if len(decls) == 0 {
		p.levels[s] = nil
		return nil
	}

	f := &fragment{}
	m := newSameLevelMerger()
	for _, d := range decls.Sorted() {
		ann := d.Annotation
		if d.Scope.Level() == decl.LevelArg {
			var ok bool
			if ann, ok = args[d.Scope.Arg].adapt(d); !ok {
				continue
			}
			if ann == nil {
				p.warn(newIgnoredWarning(string(d.Kind()), d.Scope.String(), d.Location(), "not supported on an argument"))
				continue
			}
		}
		if !operationKind(d.Scope.Level(), ann) {
			if _, ok := ann.(*decl.Schema); ok && d.Scope.Level() == decl.LevelMethod {
				p.warn(newIgnoredWarning(string(d.Kind()), d.Scope.String(), d.Location(), "schemas belong on types or arguments"))
			}
			continue
		}
		if !f.contribute(m, ann, d.Location()) {
			p.warn(newIgnoredWarning(string(d.Kind()), d.Scope.String(), d.Location(), "not applicable to operations"))
		}
	}
	f.poison = m.poison
	for _, err := range m.poison.errors(s.String()) {
		p.fail(err)
	}
	p.levels[s] = f
	return f
}

// operationKind reports whether an annotation at the given level feeds
// operations. Document-level and registry kinds are handled elsewhere.
func operationKind(level decl.Level, ann decl.Annotation) bool {
	switch ann.(type) {
	case *decl.OpenAPIDefinition, *decl.SecurityScheme, *decl.SecuritySchemes, *decl.Endpoint, *decl.Schema:
		return false
	case *decl.Server, *decl.Servers, *decl.ExternalDocumentation, *decl.Extension, *decl.Extensions,
		*decl.SecurityRequirement, *decl.SecurityRequirements,
		*decl.SecurityRequirementsSet, *decl.SecurityRequirementsSets:
		return level != decl.LevelPackage
	}
	return true
}

// argInfo holds what one method argument declares.
type argInfo struct {
	schema       *decl.Schema
	hasParameter bool
	hasBody      bool
	bodyEmitted  bool
}

func newArgInfo(decls []decl.Declaration) *argInfo {
	a := &argInfo{}
	for _, d := range decls {
		switch v := d.Annotation.(type) {
		case *decl.Schema:
			a.schema = v
		case *decl.Parameter:
			a.hasParameter = true
		case *decl.RequestBody:
			a.hasBody = true
		}
	}
	return a
}

// adapt rewrites an argument-scope annotation into its method-level form.
// It returns (nil, true) for kinds arguments do not support and false for
// annotations consumed by another one (the argument schema).
func (a *argInfo) adapt(d decl.Declaration) (decl.Annotation, bool) {
	switch v := d.Annotation.(type) {
	case *decl.Parameter:
		cp := *v
		if cp.Name == nil {
			cp.Name = decl.Ptr(d.Scope.Arg)
		}
		if cp.Schema == nil && cp.Content == nil && a.schema != nil {
			cp.Schema = a.schema
		}
		return &cp, true
	case *decl.RequestBody:
		cp := *v
		if a.schema != nil {
			cp.Content = withSchema(cp.Content, a.schema)
		}
		return &cp, true
	case *decl.Schema:
		if a.hasParameter || a.hasBody || a.bodyEmitted {
			return nil, false
		}
		a.bodyEmitted = true
		return &decl.RequestBody{Content: []decl.Content{{Schema: v}}}, true
	case *decl.Extension, *decl.Extensions:
		return v, true
	}
	return nil, true
}

// withSchema gives every content entry without a schema the argument schema.
func withSchema(content []decl.Content, s *decl.Schema) []decl.Content {
	if len(content) == 0 {
		return []decl.Content{{Schema: s}}
	}
	out := make([]decl.Content, len(content))
	for i, c := range content {
		if c.Schema == nil {
			c.Schema = s
		}
		out[i] = c
	}
	return out
}

// endpoint merges the Endpoint declarations of exactly one scope.
func (p *pass) endpoint(s decl.Scope) (*decl.Endpoint, decl.Declaration) {
	var (
		ep    *decl.Endpoint
		first decl.Declaration
	)
	m := newSameLevelMerger()
	for _, d := range p.byScope[s] {
		e, ok := d.Annotation.(*decl.Endpoint)
		if !ok {
			continue
		}
		if ep == nil {
			ep = &decl.Endpoint{}
			first = d
		}
		m.overlay(reflect.ValueOf(ep).Elem(), reflect.ValueOf(e).Elem(), "")
	}
	return ep, first
}

// firstOperationDecl returns the first declaration under a method scope
// that would contribute to an operation.
func (p *pass) firstOperationDecl(ms decl.Scope) (decl.Declaration, bool) {
	for _, s := range p.scopes {
		if s.MethodScope() != ms || s.Level() < decl.LevelMethod {
			continue
		}
		for _, d := range p.byScope[s] {
			if operationKind(decl.LevelMethod, d.Annotation) {
				return d, true
			}
		}
	}
	return decl.Declaration{}, false
}

// mergeDocument folds every OpenAPIDefinition and the package-level
// document kinds (servers, external docs, extensions, security) into one
// document fragment. All of them form a single precedence level.
func (p *pass) mergeDocument() *docFragment {
	doc := &docFragment{}
	m := newSameLevelMerger()
	secure := func() *securityDecl {
		if doc.security == nil {
			doc.security = &securityDecl{}
		}
		return doc.security
	}
	stop := func(list string) {
		if doc.stops == nil {
			doc.stops = make(map[string]bool)
		}
		doc.stops[list] = true
	}
	for _, d := range p.decls {
		var part docFragment
		switch a := d.Annotation.(type) {
		case *decl.OpenAPIDefinition:
			part.Info = a.Info
			part.ExternalDocs = a.ExternalDocs
			part.Servers = a.Servers
			part.Extensions = a.Extensions
			if a.Servers != nil && len(a.Servers) == 0 {
				stop("servers")
			}
			if a.Security != nil {
				s := secure()
				for _, r := range a.Security {
					s.add(d.Location(), r)
				}
			}
			if a.SecuritySets != nil {
				s := secure()
				for _, set := range a.SecuritySets {
					s.add(d.Location(), set.Value...)
				}
			}
		case *decl.Server, *decl.Servers, *decl.ExternalDocumentation, *decl.Extension, *decl.Extensions:
			if d.Scope.Level() != decl.LevelPackage {
				continue
			}
			switch a := a.(type) {
			case *decl.Server:
				part.Servers = []decl.Server{*a}
			case *decl.Servers:
				if len(a.Value) == 0 {
					stop("servers")
				}
				part.Servers = a.Value
			case *decl.ExternalDocumentation:
				part.ExternalDocs = a
			case *decl.Extension:
				part.Extensions = []decl.Extension{*a}
			case *decl.Extensions:
				part.Extensions = a.Value
			}
		default:
			if d.Scope.Level() != decl.LevelPackage || !contributeSecurity(secure, a, d.Location()) {
				continue
			}
		}
		doc.sources = append(doc.sources, d.Location())
		m.overlay(reflect.ValueOf(doc).Elem(), reflect.ValueOf(&part).Elem(), "")
	}
	for _, err := range m.poison.errors("document") {
		p.fail(err)
	}
	return doc
}

func endpointPath(ep *decl.Endpoint) string {
	if ep == nil {
		return ""
	}
	return deref(ep.Path)
}

// joinURLPath joins path segments with single slashes. Template segments
// such as {id} are kept as written.
func joinURLPath(parts ...string) string {
	var segs []string
	for _, part := range parts {
		if s := strings.Trim(part, "/"); s != "" {
			segs = append(segs, s)
		}
	}
	return path.Clean("/" + strings.Join(segs, "/"))
}

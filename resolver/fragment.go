package resolver

import (
	"reflect"

	"github.com/erraggy/oasresolve/decl"
)

// fragment is what one precedence level (package, type or method with its
// arguments) contributes to an operation.
type fragment struct {
	Operation    *decl.Operation             `yaml:"operation"`
	ExternalDocs *decl.ExternalDocumentation `yaml:"externalDocs"`
	RequestBody  *decl.RequestBody           `yaml:"requestBody"`
	Tags         []decl.Tag                  `yaml:"tags"`
	Servers      []decl.Server               `yaml:"servers"`
	Parameters   []decl.Parameter            `yaml:"parameters"`
	Responses    []decl.APIResponse          `yaml:"responses"`
	Callbacks    []decl.Callback             `yaml:"callbacks"`
	Extensions   []decl.Extension            `yaml:"extensions"`

	// stops names the lists declared explicitly empty at this level: none
	// from here, and nothing inherited from outer levels.
	stops map[string]bool
	// security is nil when the level declares no security requirement.
	security *securityDecl
	poison   poisonSet
}

// docFragment collects document-level declarations.
type docFragment struct {
	Info         *decl.Info                  `yaml:"info"`
	ExternalDocs *decl.ExternalDocumentation `yaml:"externalDocs"`
	Servers      []decl.Server               `yaml:"servers"`
	Extensions   []decl.Extension            `yaml:"extensions"`

	stops    map[string]bool
	security *securityDecl
	sources  []string
}

// securityDecl lists security alternatives in declaration order. A non-nil
// securityDecl with no alternatives means "no security".
type securityDecl struct {
	alternatives []securityAlternative
}

// securityAlternative is one way to satisfy security: every requirement in
// it must hold. An alternative with no requirements makes security optional.
type securityAlternative struct {
	requirements []decl.SecurityRequirement
	source       string
}

func (s *securityDecl) add(source string, reqs ...decl.SecurityRequirement) {
	s.alternatives = append(s.alternatives, securityAlternative{requirements: reqs, source: source})
}

func (f *fragment) stop(list string) {
	if f.stops == nil {
		f.stops = make(map[string]bool)
	}
	f.stops[list] = true
}

func (f *fragment) secure() *securityDecl {
	if f.security == nil {
		f.security = &securityDecl{}
	}
	return f.security
}

// contribute folds one annotation into a level fragment. It reports false
// when the annotation kind does not contribute to operations.
func (f *fragment) contribute(m *merger, ann decl.Annotation, source string) bool {
	var part fragment
	switch a := ann.(type) {
	case *decl.Operation:
		part.Operation = a
	case *decl.ExternalDocumentation:
		part.ExternalDocs = a
	case *decl.RequestBody:
		part.RequestBody = a
	case *decl.Tag:
		if a.IsEmpty() {
			f.stop("tags")
			return true
		}
		part.Tags = []decl.Tag{*a}
	case *decl.Tags:
		if a.IsExplicitEmpty() {
			f.stop("tags")
			return true
		}
		part.Tags = append(part.Tags, a.Value...)
		for _, ref := range a.Refs {
			part.Tags = append(part.Tags, decl.Tag{Ref: decl.Ptr(ref)})
		}
	case *decl.Server:
		part.Servers = []decl.Server{*a}
	case *decl.Servers:
		if len(a.Value) == 0 {
			f.stop("servers")
			return true
		}
		part.Servers = a.Value
	case *decl.Parameter:
		part.Parameters = []decl.Parameter{*a}
	case *decl.Parameters:
		if len(a.Value) == 0 {
			f.stop("parameters")
			return true
		}
		part.Parameters = a.Value
	case *decl.APIResponse:
		part.Responses = []decl.APIResponse{*a}
	case *decl.APIResponses:
		if len(a.Value) == 0 {
			f.stop("responses")
			return true
		}
		part.Responses = a.Value
	case *decl.Callback:
		part.Callbacks = []decl.Callback{*a}
	case *decl.Callbacks:
		if len(a.Value) == 0 {
			f.stop("callbacks")
			return true
		}
		part.Callbacks = a.Value
	case *decl.Extension:
		part.Extensions = []decl.Extension{*a}
	case *decl.Extensions:
		if len(a.Value) == 0 {
			f.stop("extensions")
			return true
		}
		part.Extensions = a.Value
	default:
		return contributeSecurity(f.secure, ann, source)
	}
	m.overlay(reflect.ValueOf(f).Elem(), reflect.ValueOf(&part).Elem(), "")
	return true
}

// contributeSecurity records security requirement annotations. secure is
// called only when ann is a security kind, so that other kinds leave the
// level's security unset.
func contributeSecurity(secure func() *securityDecl, ann decl.Annotation, source string) bool {
	switch a := ann.(type) {
	case *decl.SecurityRequirement:
		secure().add(source, *a)
	case *decl.SecurityRequirements:
		s := secure()
		for _, r := range a.Value {
			s.add(source, r)
		}
	case *decl.SecurityRequirementsSet:
		secure().add(source, a.Value...)
	case *decl.SecurityRequirementsSets:
		s := secure()
		for _, set := range a.Value {
			s.add(source, set.Value...)
		}
	default:
		return false
	}
	return true
}

// inherit overlays an inner level onto the accumulated fragment f. Lists the
// inner level stops are cleared first.
func (f *fragment) inherit(inner *fragment) {
	if inner == nil {
		return
	}
	acc := reflect.ValueOf(f).Elem()
	for list := range inner.stops {
		field := acc.FieldByNameFunc(func(name string) bool { return fieldNameOf(acc.Type(), name) == list })
		if field.IsValid() {
			field.Set(reflect.Zero(field.Type()))
		}
	}
	newCrossLevelMerger(inner.poison).overlay(acc, reflect.ValueOf(inner).Elem(), "")
}

func fieldNameOf(t reflect.Type, name string) string {
	f, ok := t.FieldByName(name)
	if !ok || !f.IsExported() {
		return ""
	}
	return fieldName(f)
}

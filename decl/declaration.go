package decl

import (
	"fmt"
	"sort"

	"go.yaml.in/yaml/v4"
)

// Kind names an annotation type.
type Kind string

// Declarable annotation kinds
const (
	KindOpenAPIDefinition        Kind = "openAPIDefinition"
	KindTag                      Kind = "tag"
	KindTags                     Kind = "tags"
	KindServer                   Kind = "server"
	KindServers                  Kind = "servers"
	KindExternalDocumentation    Kind = "externalDocumentation"
	KindSchema                   Kind = "schema"
	KindParameter                Kind = "parameter"
	KindParameters               Kind = "parameters"
	KindRequestBody              Kind = "requestBody"
	KindAPIResponse              Kind = "apiResponse"
	KindAPIResponses             Kind = "apiResponses"
	KindOperation                Kind = "operation"
	KindCallback                 Kind = "callback"
	KindCallbacks                Kind = "callbacks"
	KindSecurityScheme           Kind = "securityScheme"
	KindSecuritySchemes          Kind = "securitySchemes"
	KindSecurityRequirement      Kind = "securityRequirement"
	KindSecurityRequirements     Kind = "securityRequirements"
	KindSecurityRequirementsSet  Kind = "securityRequirementsSet"
	KindSecurityRequirementsSets Kind = "securityRequirementsSets"
	KindExtension                Kind = "extension"
	KindExtensions               Kind = "extensions"
	KindEndpoint                 Kind = "endpoint"
)

// Annotation is one annotation instance with presence-tracked fields.
type Annotation interface {
	Kind() Kind
}

// Declaration is a single declaration record: an annotation instance bound
// to the scope that declared it.
type Declaration struct {
	// Scope is the declaring scope
	Scope Scope
	// Seq is the stable first-seen ordering key. Lists in the resolved
	// document follow Seq order, never arrival order.
	Seq int
	// Source is a human-readable location used in diagnostics
	Source string
	// Annotation carries the field values
	Annotation Annotation
}

// Kind returns the annotation kind.
func (d Declaration) Kind() Kind {
	if d.Annotation == nil {
		return ""
	}
	return d.Annotation.Kind()
}

// Location returns Source, falling back to the scope and sequence number.
func (d Declaration) Location() string {
	if d.Source != "" {
		return d.Source
	}
	return fmt.Sprintf("%s#%d", d.Scope, d.Seq)
}

// Set is an unordered collection of declarations.
type Set []Declaration

// Sorted returns a copy ordered by Seq, then Source, then scope, then Kind,
// then the canonical YAML encoding of the annotation, so declarations that
// tie on every ordering key still sort the same way for any input order.
// The receiver is not modified.
func (s Set) Sorted() Set {
	type entry struct {
		d       Declaration
		content string
	}
	entries := make([]entry, len(s))
	for i, d := range s {
		entries[i] = entry{d: d}
	}
	contentOf := func(e *entry) string {
		if e.content == "" {
			e.content = canonical(e.d.Annotation)
		}
		return e.content
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].d, entries[j].d
		if a.Seq != b.Seq {
			return a.Seq < b.Seq
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if as, bs := a.Scope.String(), b.Scope.String(); as != bs {
			return as < bs
		}
		if a.Kind() != b.Kind() {
			return a.Kind() < b.Kind()
		}
		return contentOf(&entries[i]) < contentOf(&entries[j])
	})
	out := make(Set, len(entries))
	for i, e := range entries {
		out[i] = e.d
	}
	return out
}

// canonical encodes an annotation for ordering. Unset fields are omitted.
func canonical(a Annotation) string {
	if a == nil {
		return "\x00"
	}
	data, err := yaml.Marshal(a)
	if err != nil {
		return "\x00" + err.Error()
	}
	return "\x01" + string(data)
}

// Filter returns the declarations for which keep returns true.
func (s Set) Filter(keep func(Declaration) bool) Set {
	var out Set
	for _, d := range s {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// Scopes returns the distinct scopes in Seq order of first appearance.
func (s Set) Scopes() []Scope {
	seen := make(map[Scope]bool)
	var out []Scope
	for _, d := range s.Sorted() {
		if !seen[d.Scope] {
			seen[d.Scope] = true
			out = append(out, d.Scope)
		}
	}
	return out
}

// Ptr returns a pointer to v. It is a convenience for building declarations
// in code.
func Ptr[T any](v T) *T {
	return &v
}

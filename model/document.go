package model

import "strings"

// Document is the root of a resolved OpenAPI 3.x document.
//
// A Document returned by the resolver is frozen: it shares no memory with
// the resolver's builder state, and callers may treat it as immutable.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info" json:"info"`
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
	// Security lists alternative requirement sets; satisfying any one of
	// them authorizes access. An empty set marks security optional.
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extra        map[string]any        `yaml:",inline" json:"-"`
}

// OperationRef identifies an operation within a document.
type OperationRef struct {
	Method    string
	Path      string
	Operation *Operation
}

// String returns "METHOD /path".
func (r OperationRef) String() string {
	return strings.ToUpper(r.Method) + " " + r.Path
}

// Operations returns every operation ordered by path, then by method order.
func (d *Document) Operations() []OperationRef {
	var refs []OperationRef
	for _, path := range d.Paths.SortedKeys() {
		item := d.Paths[path]
		if item == nil {
			continue
		}
		for _, m := range Methods {
			if op := item.GetOperation(m); op != nil {
				refs = append(refs, OperationRef{Method: m, Path: path, Operation: op})
			}
		}
	}
	return refs
}

// OperationByID returns the operation with the given operationId.
func (d *Document) OperationByID(id string) (OperationRef, bool) {
	for _, ref := range d.Operations() {
		if ref.Operation.OperationID == id {
			return ref, true
		}
	}
	return OperationRef{}, false
}

// Tag returns the document tag with the given name, or nil.
func (d *Document) Tag(name string) *Tag {
	for _, t := range d.Tags {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// EffectiveSecurity returns the requirements that apply to op: its own when
// declared, otherwise the document's.
func (d *Document) EffectiveSecurity(op *Operation) []SecurityRequirement {
	if op != nil && op.Security != nil {
		return op.Security
	}
	return d.Security
}

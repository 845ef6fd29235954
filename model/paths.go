package model

import (
	"strings"

	"github.com/erraggy/oasresolve/internal/maputil"
)

// Paths holds the relative paths to individual endpoints
type Paths map[string]*PathItem

// Operation returns the operation bound to method on path, or nil.
func (p Paths) Operation(method, path string) *Operation {
	item, ok := p[path]
	if !ok || item == nil {
		return nil
	}
	return item.GetOperation(method)
}

// SortedKeys returns the path templates in lexical order.
func (p Paths) SortedKeys() []string {
	return maputil.SortedKeys(p)
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string         `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation     `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation     `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation     `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation     `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation     `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation     `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation     `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation     `yaml:"trace,omitempty" json:"trace,omitempty"`
	Servers     []*Server      `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// GetOperation returns the operation for the given method, or nil.
// The method is matched case-insensitively.
func (p *PathItem) GetOperation(method string) *Operation {
	switch strings.ToLower(method) {
	case MethodGet:
		return p.Get
	case MethodPut:
		return p.Put
	case MethodPost:
		return p.Post
	case MethodDelete:
		return p.Delete
	case MethodOptions:
		return p.Options
	case MethodHead:
		return p.Head
	case MethodPatch:
		return p.Patch
	case MethodTrace:
		return p.Trace
	}
	return nil
}

// SetOperation binds op to method. It returns false for unknown methods.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	switch strings.ToLower(method) {
	case MethodGet:
		p.Get = op
	case MethodPut:
		p.Put = op
	case MethodPost:
		p.Post = op
	case MethodDelete:
		p.Delete = op
	case MethodOptions:
		p.Options = op
	case MethodHead:
		p.Head = op
	case MethodPatch:
		p.Patch = op
	case MethodTrace:
		p.Trace = op
	default:
		return false
	}
	return true
}

// Operations returns the non-nil operations keyed by lower-case method.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for _, m := range Methods {
		if op := p.GetOperation(m); op != nil {
			ops[m] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string               `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs        `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
	Callbacks    map[string]*Callback `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Deprecated   bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// Security overrides the document requirements when non-nil.
	// A non-nil empty slice removes security for this operation.
	Security []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Servers  []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Extra    map[string]any        `yaml:",inline" json:"-"`
}

// Parameter returns the parameter with the given name and location, or nil.
func (o *Operation) Parameter(name, in string) *Parameter {
	for _, p := range o.Parameters {
		if p.Name == name && p.In == in {
			return p
		}
	}
	return nil
}

// Callback maps runtime expressions to the path items invoked for them
type Callback struct {
	Ref         string               `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Expressions map[string]*PathItem `yaml:",inline" json:"-"`
	Extra       map[string]any       `yaml:"-" json:"-"`
}

package model

// Parameter describes a single operation parameter. Name and In together
// identify it within an operation.
type Parameter struct {
	Ref             string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name            string                `yaml:"name,omitempty" json:"name,omitempty"`
	In              string                `yaml:"in,omitempty" json:"in,omitempty"`
	Description     string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool                  `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved   bool                  `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema          *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        map[string]*Example   `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content         map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Extra           map[string]any        `yaml:",inline" json:"-"`
}

// Key returns the identity of the parameter within an operation.
// Referencing parameters are identified by their ref.
func (p *Parameter) Key() string {
	if p.Name == "" && p.Ref != "" {
		return "$ref:" + p.Ref
	}
	return p.In + ":" + p.Name
}

// Header represents a header object
type Header struct {
	Ref             string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description     string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool                  `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema          *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        map[string]*Example   `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content         map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Extra           map[string]any        `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema   *Schema              `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                  `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*Example  `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding map[string]*Encoding `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Extra    map[string]any       `yaml:",inline" json:"-"`
}

// Encoding describes how a single property of a request body is serialized
type Encoding struct {
	ContentType   string             `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Headers       map[string]*Header `yaml:"headers,omitempty" json:"headers,omitempty"`
	Style         string             `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool              `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool               `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Extra         map[string]any     `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

// Response describes a single response from an API operation
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Links       map[string]*Link      `yaml:"links,omitempty" json:"links,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

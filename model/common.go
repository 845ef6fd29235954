package model

// Info provides metadata about the API
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`
	Summary        string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Email string         `yaml:"email,omitempty" json:"email,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API
type License struct {
	Name       string         `yaml:"name" json:"name"`
	URL        string         `yaml:"url,omitempty" json:"url,omitempty"`
	Identifier string         `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Extra      map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string         `yaml:"url" json:"url"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string         `yaml:"name" json:"name"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extra        map[string]any `yaml:",inline" json:"-"`
}

// Server represents a server URL and optional description
type Server struct {
	URL         string                    `yaml:"url" json:"url"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	Extra       map[string]any            `yaml:",inline" json:"-"`
}

// ServerVariable represents a variable for server URL template substitution
type ServerVariable struct {
	Enum        []string       `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string         `yaml:"default" json:"default"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Example represents an example object
type Example struct {
	Ref           string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary       string         `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any            `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string         `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	Extra         map[string]any `yaml:",inline" json:"-"`
}

// Link represents a possible design-time link for a response
type Link struct {
	Ref          string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server        `yaml:"server,omitempty" json:"server,omitempty"`
	Extra        map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects. Nothing here affects the document
// unless something else references it.
type Components struct {
	Schemas         map[string]*Schema         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*Example        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           map[string]*Link           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       map[string]*Callback       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Extra           map[string]any             `yaml:",inline" json:"-"`
}

// Empty reports whether no registry holds any entry.
func (c *Components) Empty() bool {
	if c == nil {
		return true
	}
	return len(c.Schemas) == 0 && len(c.Responses) == 0 && len(c.Parameters) == 0 &&
		len(c.Examples) == 0 && len(c.RequestBodies) == 0 && len(c.Headers) == 0 &&
		len(c.SecuritySchemes) == 0 && len(c.Links) == 0 && len(c.Callbacks) == 0 &&
		len(c.Extra) == 0
}

// Count returns the number of registry entries across all kinds.
func (c *Components) Count() int {
	if c == nil {
		return 0
	}
	return len(c.Schemas) + len(c.Responses) + len(c.Parameters) + len(c.Examples) +
		len(c.RequestBodies) + len(c.Headers) + len(c.SecuritySchemes) + len(c.Links) +
		len(c.Callbacks)
}

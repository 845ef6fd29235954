package decl

// Annotation values. Scalars are pointers so that an unset field (nil) is
// distinguishable from one explicitly set. Slices distinguish nil (absent,
// inherit) from non-nil empty (explicitly empty).
//
// Fields tagged `oas:"enum"` hold enumeration values; "DEFAULT" and the
// empty string are sentinels normalized to unset by Normalize.

// OpenAPIDefinition declares document-level metadata.
type OpenAPIDefinition struct {
	Info         *Info                     `yaml:"info,omitempty" json:"info,omitempty"`
	Tags         []Tag                     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Servers      []Server                  `yaml:"servers,omitempty" json:"servers,omitempty"`
	Security     []SecurityRequirement     `yaml:"security,omitempty" json:"security,omitempty"`
	SecuritySets []SecurityRequirementsSet `yaml:"securitySets,omitempty" json:"securitySets,omitempty"`
	ExternalDocs *ExternalDocumentation    `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Components   *Components               `yaml:"components,omitempty" json:"components,omitempty"`
	Extensions   []Extension               `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Info is API metadata.
type Info struct {
	Title          *string     `yaml:"title,omitempty" json:"title,omitempty"`
	Description    *string     `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService *string     `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact    `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License    `yaml:"license,omitempty" json:"license,omitempty"`
	Version        *string     `yaml:"version,omitempty" json:"version,omitempty"`
	Summary        *string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Extensions     []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Contact is API contact information.
type Contact struct {
	Name       *string     `yaml:"name,omitempty" json:"name,omitempty"`
	URL        *string     `yaml:"url,omitempty" json:"url,omitempty"`
	Email      *string     `yaml:"email,omitempty" json:"email,omitempty"`
	Extensions []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// License is API license information.
type License struct {
	Name       *string     `yaml:"name,omitempty" json:"name,omitempty"`
	URL        *string     `yaml:"url,omitempty" json:"url,omitempty"`
	Identifier *string     `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Extensions []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Tag declares or references a tag. A Tag with no fields set is an
// explicit "no tags" marker at its scope.
type Tag struct {
	Name         *string                `yaml:"name,omitempty" json:"name,omitempty"`
	Description  *string                `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Ref          *string                `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions   []Extension            `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Tags is the plural tag form. Refs names tags declared elsewhere.
type Tags struct {
	Value []Tag    `yaml:"value,omitempty" json:"value,omitempty"`
	Refs  []string `yaml:"refs,omitempty" json:"refs,omitempty"`
}

// ExternalDocumentation references external documentation.
type ExternalDocumentation struct {
	Description *string     `yaml:"description,omitempty" json:"description,omitempty"`
	URL         *string     `yaml:"url,omitempty" json:"url,omitempty"`
	Extensions  []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Server declares a server.
type Server struct {
	URL         *string          `yaml:"url,omitempty" json:"url,omitempty"`
	Description *string          `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   []ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	Extensions  []Extension      `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// ServerVariable is a server URL template variable.
type ServerVariable struct {
	Name         *string     `yaml:"name,omitempty" json:"name,omitempty"`
	Enumeration  []string    `yaml:"enumeration,omitempty" json:"enumeration,omitempty"`
	DefaultValue *string     `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Description  *string     `yaml:"description,omitempty" json:"description,omitempty"`
	Extensions   []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Servers is the plural server form.
type Servers struct {
	Value []Server `yaml:"value,omitempty" json:"value,omitempty"`
}

// Schema describes a data type. At type scope it declares a component
// schema; at arg scope it describes the argument.
type Schema struct {
	Name           *string `yaml:"name,omitempty" json:"name,omitempty"`
	Title          *string `yaml:"title,omitempty" json:"title,omitempty"`
	Description    *string `yaml:"description,omitempty" json:"description,omitempty"`
	Ref            *string `yaml:"ref,omitempty" json:"ref,omitempty"`
	Implementation *string `yaml:"implementation,omitempty" json:"implementation,omitempty"`
	Type           *string `yaml:"type,omitempty" json:"type,omitempty" oas:"enum"`
	Format         *string `yaml:"format,omitempty" json:"format,omitempty"`
	Hidden         *bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	// Required marks a property as required by its parent schema.
	Required           *bool    `yaml:"required,omitempty" json:"required,omitempty"`
	RequiredProperties []string `yaml:"requiredProperties,omitempty" json:"requiredProperties,omitempty"`
	Nullable           *bool    `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly           *bool    `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly          *bool    `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated         *bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Enumeration        []string `yaml:"enumeration,omitempty" json:"enumeration,omitempty"`
	DefaultValue       *string  `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Example            *string  `yaml:"example,omitempty" json:"example,omitempty"`

	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum *bool    `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum *bool    `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          *string  `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      *bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	MaxProperties    *int     `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties    *int     `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Properties are named by their Name field.
	Properties []Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items      *Schema  `yaml:"items,omitempty" json:"items,omitempty"`
	OneOf      []Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AnyOf      []Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	AllOf      []Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	Not        *Schema  `yaml:"not,omitempty" json:"not,omitempty"`

	DiscriminatorProperty *string                `yaml:"discriminatorProperty,omitempty" json:"discriminatorProperty,omitempty"`
	DiscriminatorMapping  []DiscriminatorMapping `yaml:"discriminatorMapping,omitempty" json:"discriminatorMapping,omitempty"`

	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extensions   []Extension            `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// DiscriminatorMapping maps a discriminator value to a schema implementation.
type DiscriminatorMapping struct {
	Value  *string `yaml:"value,omitempty" json:"value,omitempty"`
	Schema *string `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Content describes one media type of a body.
type Content struct {
	MediaType  *string         `yaml:"mediaType,omitempty" json:"mediaType,omitempty"`
	Schema     *Schema         `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example    *string         `yaml:"example,omitempty" json:"example,omitempty"`
	Examples   []ExampleObject `yaml:"examples,omitempty" json:"examples,omitempty"`
	Encoding   []Encoding      `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	Extensions []Extension     `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Encoding describes serialization of one body property.
type Encoding struct {
	Name          *string     `yaml:"name,omitempty" json:"name,omitempty"`
	ContentType   *string     `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	Style         *string     `yaml:"style,omitempty" json:"style,omitempty" oas:"enum"`
	Explode       *string     `yaml:"explode,omitempty" json:"explode,omitempty" oas:"enum"`
	AllowReserved *bool       `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Headers       []Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Extensions    []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Header declares a header.
type Header struct {
	Name            *string         `yaml:"name,omitempty" json:"name,omitempty"`
	Description     *string         `yaml:"description,omitempty" json:"description,omitempty"`
	Ref             *string         `yaml:"ref,omitempty" json:"ref,omitempty"`
	Schema          *Schema         `yaml:"schema,omitempty" json:"schema,omitempty"`
	Content         []Content       `yaml:"content,omitempty" json:"content,omitempty"`
	Required        *bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      *bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue *bool           `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           *string         `yaml:"style,omitempty" json:"style,omitempty" oas:"enum"`
	Explode         *string         `yaml:"explode,omitempty" json:"explode,omitempty" oas:"enum"`
	Example         *string         `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        []ExampleObject `yaml:"examples,omitempty" json:"examples,omitempty"`
	Extensions      []Extension     `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// ExampleObject declares an example.
type ExampleObject struct {
	Name          *string     `yaml:"name,omitempty" json:"name,omitempty"`
	Summary       *string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   *string     `yaml:"description,omitempty" json:"description,omitempty"`
	Value         *string     `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue *string     `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	Ref           *string     `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions    []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Parameter declares an operation parameter. At arg scope an unset Name
// defaults to the argument name.
type Parameter struct {
	Name            *string         `yaml:"name,omitempty" json:"name,omitempty"`
	In              *string         `yaml:"in,omitempty" json:"in,omitempty" oas:"enum"`
	Description     *string         `yaml:"description,omitempty" json:"description,omitempty"`
	Required        *bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      *bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue *bool           `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           *string         `yaml:"style,omitempty" json:"style,omitempty" oas:"enum"`
	Explode         *string         `yaml:"explode,omitempty" json:"explode,omitempty" oas:"enum"`
	AllowReserved   *bool           `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema          *Schema         `yaml:"schema,omitempty" json:"schema,omitempty"`
	Content         []Content       `yaml:"content,omitempty" json:"content,omitempty"`
	Hidden          *bool           `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Example         *string         `yaml:"example,omitempty" json:"example,omitempty"`
	Examples        []ExampleObject `yaml:"examples,omitempty" json:"examples,omitempty"`
	Ref             *string         `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions      []Extension     `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Parameters is the plural parameter form.
type Parameters struct {
	Value []Parameter `yaml:"value,omitempty" json:"value,omitempty"`
}

// RequestBody declares an operation request body.
type RequestBody struct {
	Name        *string     `yaml:"name,omitempty" json:"name,omitempty"`
	Description *string     `yaml:"description,omitempty" json:"description,omitempty"`
	Content     []Content   `yaml:"content,omitempty" json:"content,omitempty"`
	Required    *bool       `yaml:"required,omitempty" json:"required,omitempty"`
	Hidden      *bool       `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Ref         *string     `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions  []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// APIResponse declares a response. An unset ResponseCode means "default".
type APIResponse struct {
	Name         *string     `yaml:"name,omitempty" json:"name,omitempty"`
	ResponseCode *string     `yaml:"responseCode,omitempty" json:"responseCode,omitempty"`
	Description  *string     `yaml:"description,omitempty" json:"description,omitempty"`
	Content      []Content   `yaml:"content,omitempty" json:"content,omitempty"`
	Headers      []Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Links        []Link      `yaml:"links,omitempty" json:"links,omitempty"`
	Hidden       *bool       `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Ref          *string     `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions   []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// APIResponses is the plural response form.
type APIResponses struct {
	Value      []APIResponse `yaml:"value,omitempty" json:"value,omitempty"`
	Extensions []Extension   `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Link declares a response link.
type Link struct {
	Name         *string         `yaml:"name,omitempty" json:"name,omitempty"`
	OperationRef *string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  *string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []LinkParameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *string         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  *string         `yaml:"description,omitempty" json:"description,omitempty"`
	Server       *Server         `yaml:"server,omitempty" json:"server,omitempty"`
	Ref          *string         `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions   []Extension     `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// LinkParameter passes a runtime expression to a linked operation.
type LinkParameter struct {
	Name       *string `yaml:"name,omitempty" json:"name,omitempty"`
	Expression *string `yaml:"expression,omitempty" json:"expression,omitempty"`
}

// Operation describes the operation bound to a method.
type Operation struct {
	OperationID *string `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Summary     *string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	Deprecated  *bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Hidden      *bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

// Callback declares an out-of-band request the API may initiate.
type Callback struct {
	Name                  *string             `yaml:"name,omitempty" json:"name,omitempty"`
	CallbackURLExpression *string             `yaml:"callbackUrlExpression,omitempty" json:"callbackUrlExpression,omitempty"`
	Operations            []CallbackOperation `yaml:"operations,omitempty" json:"operations,omitempty"`
	Hidden                *bool               `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Ref                   *string             `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions            []Extension         `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// CallbackOperation is one operation of a callback path item.
type CallbackOperation struct {
	Method      *string               `yaml:"method,omitempty" json:"method,omitempty"`
	Summary     *string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description *string               `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  []Parameter           `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   []APIResponse         `yaml:"responses,omitempty" json:"responses,omitempty"`
	Security    []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Extensions  []Extension           `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Callbacks is the plural callback form.
type Callbacks struct {
	Value []Callback `yaml:"value,omitempty" json:"value,omitempty"`
}

// SecurityScheme declares a security scheme in the components registry.
type SecurityScheme struct {
	SecuritySchemeName *string     `yaml:"securitySchemeName,omitempty" json:"securitySchemeName,omitempty"`
	Type               *string     `yaml:"type,omitempty" json:"type,omitempty" oas:"enum"`
	Description        *string     `yaml:"description,omitempty" json:"description,omitempty"`
	APIKeyName         *string     `yaml:"apiKeyName,omitempty" json:"apiKeyName,omitempty"`
	In                 *string     `yaml:"in,omitempty" json:"in,omitempty" oas:"enum"`
	Scheme             *string     `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat       *string     `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows              *OAuthFlows `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL   *string     `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
	Ref                *string     `yaml:"ref,omitempty" json:"ref,omitempty"`
	Extensions         []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// SecuritySchemes is the plural security scheme form.
type SecuritySchemes struct {
	Value []SecurityScheme `yaml:"value,omitempty" json:"value,omitempty"`
}

// OAuthFlows configures the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow  `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow  `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow  `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow  `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
	Extensions        []Extension `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// OAuthFlow configures one OAuth flow.
type OAuthFlow struct {
	AuthorizationURL *string      `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         *string      `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       *string      `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           []OAuthScope `yaml:"scopes,omitempty" json:"scopes,omitempty"`
	Extensions       []Extension  `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// OAuthScope names one OAuth scope.
type OAuthScope struct {
	Name        *string `yaml:"name,omitempty" json:"name,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
}

// SecurityRequirement names a security scheme and the scopes it requires.
// Each requirement declared on its own is one alternative.
type SecurityRequirement struct {
	Name   *string  `yaml:"name,omitempty" json:"name,omitempty"`
	Scopes []string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// SecurityRequirements is the plural requirement form. An explicitly empty
// Value removes security at its scope.
type SecurityRequirements struct {
	Value []SecurityRequirement `yaml:"value,omitempty" json:"value,omitempty"`
}

// SecurityRequirementsSet groups requirements that must all be satisfied.
// An empty set makes security optional.
type SecurityRequirementsSet struct {
	Value []SecurityRequirement `yaml:"value,omitempty" json:"value,omitempty"`
}

// SecurityRequirementsSets is the plural set form.
type SecurityRequirementsSets struct {
	Value []SecurityRequirementsSet `yaml:"value,omitempty" json:"value,omitempty"`
}

// Extension declares one "x-" key. When ParseValue is set the value is
// parsed as JSON or YAML instead of being kept as a string.
type Extension struct {
	Name       *string `yaml:"name,omitempty" json:"name,omitempty"`
	Value      *string `yaml:"value,omitempty" json:"value,omitempty"`
	ParseValue *bool   `yaml:"parseValue,omitempty" json:"parseValue,omitempty"`
	// Source is stamped by Normalize with the declaring location.
	Source string `yaml:"-" json:"-"`
}

// Extensions is the plural extension form.
type Extensions struct {
	Value []Extension `yaml:"value,omitempty" json:"value,omitempty"`
}

// Endpoint binds a scope to HTTP routing. At type scope Path is a prefix and
// the media types are defaults for every method; at method scope Method and
// Path select the operation.
type Endpoint struct {
	Method   *string  `yaml:"method,omitempty" json:"method,omitempty"`
	Path     *string  `yaml:"path,omitempty" json:"path,omitempty"`
	Produces []string `yaml:"produces,omitempty" json:"produces,omitempty"`
	Consumes []string `yaml:"consumes,omitempty" json:"consumes,omitempty"`
}

func (*OpenAPIDefinition) Kind() Kind        { return KindOpenAPIDefinition }
func (*Tag) Kind() Kind                      { return KindTag }
func (*Tags) Kind() Kind                     { return KindTags }
func (*Server) Kind() Kind                   { return KindServer }
func (*Servers) Kind() Kind                  { return KindServers }
func (*ExternalDocumentation) Kind() Kind    { return KindExternalDocumentation }
func (*Schema) Kind() Kind                   { return KindSchema }
func (*Parameter) Kind() Kind                { return KindParameter }
func (*Parameters) Kind() Kind               { return KindParameters }
func (*RequestBody) Kind() Kind              { return KindRequestBody }
func (*APIResponse) Kind() Kind              { return KindAPIResponse }
func (*APIResponses) Kind() Kind             { return KindAPIResponses }
func (*Operation) Kind() Kind                { return KindOperation }
func (*Callback) Kind() Kind                 { return KindCallback }
func (*Callbacks) Kind() Kind                { return KindCallbacks }
func (*SecurityScheme) Kind() Kind           { return KindSecurityScheme }
func (*SecuritySchemes) Kind() Kind          { return KindSecuritySchemes }
func (*SecurityRequirement) Kind() Kind      { return KindSecurityRequirement }
func (*SecurityRequirements) Kind() Kind     { return KindSecurityRequirements }
func (*SecurityRequirementsSet) Kind() Kind  { return KindSecurityRequirementsSet }
func (*SecurityRequirementsSets) Kind() Kind { return KindSecurityRequirementsSets }
func (*Extension) Kind() Kind                { return KindExtension }
func (*Extensions) Kind() Kind               { return KindExtensions }
func (*Endpoint) Kind() Kind                 { return KindEndpoint }

// Components declares reusable registry entries. Each entry is keyed by its
// name field.
type Components struct {
	Schemas         []Schema         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       []APIResponse    `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      []Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        []ExampleObject  `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   []RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         []Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes []SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           []Link           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       []Callback       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`
	Extensions      []Extension      `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// IsEmpty reports whether the tag carries no field at all.
func (t *Tag) IsEmpty() bool {
	return t.Name == nil && t.Description == nil && t.ExternalDocs == nil && t.Ref == nil && len(t.Extensions) == 0
}

// IsExplicitEmpty reports whether the plural form was declared with no entries.
// A declared plural annotation with nothing in it means "none here, do not
// inherit", which is different from the annotation being absent.
func (t *Tags) IsExplicitEmpty() bool {
	return len(t.Value) == 0 && len(t.Refs) == 0
}

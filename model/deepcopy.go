package model

// DeepCopy creates a deep copy of the document.
func (in *Document) DeepCopy() *Document {
	if in == nil {
		return nil
	}
	out := &Document{
		OpenAPI:      in.OpenAPI,
		Info:         in.Info.DeepCopy(),
		Servers:      deepCopyServers(in.Servers),
		Paths:        deepCopyPaths(in.Paths),
		Components:   in.Components.DeepCopy(),
		Security:     deepCopySecurity(in.Security),
		ExternalDocs: in.ExternalDocs.DeepCopy(),
		Extra:        deepCopyExtensions(in.Extra),
	}
	if in.Tags != nil {
		out.Tags = make([]*Tag, len(in.Tags))
		for i, t := range in.Tags {
			out.Tags[i] = t.DeepCopy()
		}
	}
	return out
}

// DeepCopy creates a deep copy of the info object.
func (in *Info) DeepCopy() *Info {
	if in == nil {
		return nil
	}
	out := *in
	if in.Contact != nil {
		c := *in.Contact
		c.Extra = deepCopyExtensions(in.Contact.Extra)
		out.Contact = &c
	}
	if in.License != nil {
		l := *in.License
		l.Extra = deepCopyExtensions(in.License.Extra)
		out.License = &l
	}
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the external docs object.
func (in *ExternalDocs) DeepCopy() *ExternalDocs {
	if in == nil {
		return nil
	}
	out := *in
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the tag.
func (in *Tag) DeepCopy() *Tag {
	if in == nil {
		return nil
	}
	out := *in
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the server.
func (in *Server) DeepCopy() *Server {
	if in == nil {
		return nil
	}
	out := *in
	if in.Variables != nil {
		out.Variables = make(map[string]ServerVariable, len(in.Variables))
		for k, v := range in.Variables {
			v.Enum = copyStrings(v.Enum)
			v.Extra = deepCopyExtensions(v.Extra)
			out.Variables[k] = v
		}
	}
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the components registry.
func (in *Components) DeepCopy() *Components {
	if in == nil {
		return nil
	}
	return &Components{
		Schemas:         deepCopyMap(in.Schemas, (*Schema).DeepCopy),
		Responses:       deepCopyMap(in.Responses, (*Response).DeepCopy),
		Parameters:      deepCopyMap(in.Parameters, (*Parameter).DeepCopy),
		Examples:        deepCopyMap(in.Examples, (*Example).DeepCopy),
		RequestBodies:   deepCopyMap(in.RequestBodies, (*RequestBody).DeepCopy),
		Headers:         deepCopyMap(in.Headers, (*Header).DeepCopy),
		SecuritySchemes: deepCopyMap(in.SecuritySchemes, (*SecurityScheme).DeepCopy),
		Links:           deepCopyMap(in.Links, (*Link).DeepCopy),
		Callbacks:       deepCopyMap(in.Callbacks, (*Callback).DeepCopy),
		Extra:           deepCopyExtensions(in.Extra),
	}
}

// DeepCopy creates a deep copy of the schema.
func (in *Schema) DeepCopy() *Schema {
	if in == nil {
		return nil
	}
	out := *in
	out.Default = deepCopyJSONValue(in.Default)
	out.Example = deepCopyJSONValue(in.Example)
	out.Enum = deepCopyEnumSlice(in.Enum)
	out.MultipleOf = copyPtr(in.MultipleOf)
	out.Maximum = copyPtr(in.Maximum)
	out.Minimum = copyPtr(in.Minimum)
	out.MaxLength = copyPtr(in.MaxLength)
	out.MinLength = copyPtr(in.MinLength)
	out.MaxItems = copyPtr(in.MaxItems)
	out.MinItems = copyPtr(in.MinItems)
	out.MaxProperties = copyPtr(in.MaxProperties)
	out.MinProperties = copyPtr(in.MinProperties)
	out.Items = in.Items.DeepCopy()
	out.Properties = deepCopyMap(in.Properties, (*Schema).DeepCopy)
	out.Required = copyStrings(in.Required)
	out.AllOf = deepCopySchemas(in.AllOf)
	out.AnyOf = deepCopySchemas(in.AnyOf)
	out.OneOf = deepCopySchemas(in.OneOf)
	out.Not = in.Not.DeepCopy()
	if in.Discriminator != nil {
		d := *in.Discriminator
		if in.Discriminator.Mapping != nil {
			d.Mapping = make(map[string]string, len(in.Discriminator.Mapping))
			for k, v := range in.Discriminator.Mapping {
				d.Mapping[k] = v
			}
		}
		d.Extra = deepCopyExtensions(in.Discriminator.Extra)
		out.Discriminator = &d
	}
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the parameter.
func (in *Parameter) DeepCopy() *Parameter {
	if in == nil {
		return nil
	}
	out := *in
	out.Explode = copyPtr(in.Explode)
	out.Schema = in.Schema.DeepCopy()
	out.Example = deepCopyJSONValue(in.Example)
	out.Examples = deepCopyMap(in.Examples, (*Example).DeepCopy)
	out.Content = deepCopyMap(in.Content, (*MediaType).DeepCopy)
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the header.
func (in *Header) DeepCopy() *Header {
	if in == nil {
		return nil
	}
	out := *in
	out.Explode = copyPtr(in.Explode)
	out.Schema = in.Schema.DeepCopy()
	out.Example = deepCopyJSONValue(in.Example)
	out.Examples = deepCopyMap(in.Examples, (*Example).DeepCopy)
	out.Content = deepCopyMap(in.Content, (*MediaType).DeepCopy)
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the media type.
func (in *MediaType) DeepCopy() *MediaType {
	if in == nil {
		return nil
	}
	return &MediaType{
		Schema:   in.Schema.DeepCopy(),
		Example:  deepCopyJSONValue(in.Example),
		Examples: deepCopyMap(in.Examples, (*Example).DeepCopy),
		Encoding: deepCopyMap(in.Encoding, (*Encoding).DeepCopy),
		Extra:    deepCopyExtensions(in.Extra),
	}
}

// DeepCopy creates a deep copy of the encoding.
func (in *Encoding) DeepCopy() *Encoding {
	if in == nil {
		return nil
	}
	out := *in
	out.Headers = deepCopyMap(in.Headers, (*Header).DeepCopy)
	out.Explode = copyPtr(in.Explode)
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the example.
func (in *Example) DeepCopy() *Example {
	if in == nil {
		return nil
	}
	out := *in
	out.Value = deepCopyJSONValue(in.Value)
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the request body.
func (in *RequestBody) DeepCopy() *RequestBody {
	if in == nil {
		return nil
	}
	out := *in
	out.Content = deepCopyMap(in.Content, (*MediaType).DeepCopy)
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the response.
func (in *Response) DeepCopy() *Response {
	if in == nil {
		return nil
	}
	out := *in
	out.Headers = deepCopyMap(in.Headers, (*Header).DeepCopy)
	out.Content = deepCopyMap(in.Content, (*MediaType).DeepCopy)
	out.Links = deepCopyMap(in.Links, (*Link).DeepCopy)
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the link.
func (in *Link) DeepCopy() *Link {
	if in == nil {
		return nil
	}
	out := *in
	out.Parameters = deepCopyExtensions(in.Parameters)
	out.RequestBody = deepCopyJSONValue(in.RequestBody)
	out.Server = in.Server.DeepCopy()
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the callback.
func (in *Callback) DeepCopy() *Callback {
	if in == nil {
		return nil
	}
	return &Callback{
		Ref:         in.Ref,
		Expressions: deepCopyMap(in.Expressions, (*PathItem).DeepCopy),
		Extra:       deepCopyExtensions(in.Extra),
	}
}

// DeepCopy creates a deep copy of the path item.
func (in *PathItem) DeepCopy() *PathItem {
	if in == nil {
		return nil
	}
	out := &PathItem{
		Ref:         in.Ref,
		Summary:     in.Summary,
		Description: in.Description,
		Servers:     deepCopyServers(in.Servers),
		Parameters:  deepCopyParameters(in.Parameters),
		Extra:       deepCopyExtensions(in.Extra),
	}
	for _, m := range Methods {
		if op := in.GetOperation(m); op != nil {
			out.SetOperation(m, op.DeepCopy())
		}
	}
	return out
}

// DeepCopy creates a deep copy of the operation.
func (in *Operation) DeepCopy() *Operation {
	if in == nil {
		return nil
	}
	out := *in
	out.Tags = copyStrings(in.Tags)
	out.ExternalDocs = in.ExternalDocs.DeepCopy()
	out.Parameters = deepCopyParameters(in.Parameters)
	out.RequestBody = in.RequestBody.DeepCopy()
	out.Responses = deepCopyMap(in.Responses, (*Response).DeepCopy)
	out.Callbacks = deepCopyMap(in.Callbacks, (*Callback).DeepCopy)
	out.Security = deepCopySecurity(in.Security)
	out.Servers = deepCopyServers(in.Servers)
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the security scheme.
func (in *SecurityScheme) DeepCopy() *SecurityScheme {
	if in == nil {
		return nil
	}
	out := *in
	if in.Flows != nil {
		f := OAuthFlows{
			Implicit:          in.Flows.Implicit.DeepCopy(),
			Password:          in.Flows.Password.DeepCopy(),
			ClientCredentials: in.Flows.ClientCredentials.DeepCopy(),
			AuthorizationCode: in.Flows.AuthorizationCode.DeepCopy(),
			Extra:             deepCopyExtensions(in.Flows.Extra),
		}
		out.Flows = &f
	}
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the OAuth flow.
func (in *OAuthFlow) DeepCopy() *OAuthFlow {
	if in == nil {
		return nil
	}
	out := *in
	if in.Scopes != nil {
		out.Scopes = make(map[string]string, len(in.Scopes))
		for k, v := range in.Scopes {
			out.Scopes[k] = v
		}
	}
	out.Extra = deepCopyExtensions(in.Extra)
	return &out
}

// DeepCopy creates a deep copy of the requirement.
func (in SecurityRequirement) DeepCopy() SecurityRequirement {
	if in == nil {
		return nil
	}
	out := make(SecurityRequirement, len(in))
	for k, scopes := range in {
		out[k] = copyStrings(scopes)
		if out[k] == nil {
			out[k] = []string{}
		}
	}
	return out
}

func deepCopyMap[T any](in map[string]*T, cp func(*T) *T) map[string]*T {
	if in == nil {
		return nil
	}
	out := make(map[string]*T, len(in))
	for k, v := range in {
		out[k] = cp(v)
	}
	return out
}

func deepCopyPaths(v Paths) Paths {
	if v == nil {
		return nil
	}
	cp := make(Paths, len(v))
	for k, item := range v {
		if item != nil {
			cp[k] = item.DeepCopy()
		}
	}
	return cp
}

func deepCopyServers(in []*Server) []*Server {
	if in == nil {
		return nil
	}
	out := make([]*Server, len(in))
	for i, s := range in {
		out[i] = s.DeepCopy()
	}
	return out
}

func deepCopyParameters(in []*Parameter) []*Parameter {
	if in == nil {
		return nil
	}
	out := make([]*Parameter, len(in))
	for i, p := range in {
		out[i] = p.DeepCopy()
	}
	return out
}

func deepCopySchemas(in []*Schema) []*Schema {
	if in == nil {
		return nil
	}
	out := make([]*Schema, len(in))
	for i, s := range in {
		out[i] = s.DeepCopy()
	}
	return out
}

// deepCopySecurity keeps the nil versus empty distinction intact.
func deepCopySecurity(in []SecurityRequirement) []SecurityRequirement {
	if in == nil {
		return nil
	}
	out := make([]SecurityRequirement, len(in))
	for i, req := range in {
		out[i] = req.DeepCopy()
		if out[i] == nil {
			out[i] = SecurityRequirement{}
		}
	}
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// deepCopyJSONValue recursively deep copies any JSON-compatible value.
func deepCopyJSONValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyJSONValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyJSONValue(item)
		}
		return cp
	default:
		// primitives copy by value; unknown types are shared
		return v
	}
}

func deepCopyEnumSlice(v []any) []any {
	if v == nil {
		return nil
	}
	cp := make([]any, len(v))
	for i, item := range v {
		cp[i] = deepCopyJSONValue(item)
	}
	return cp
}

func deepCopyExtensions(v map[string]any) map[string]any {
	if v == nil {
		return nil
	}
	cp := make(map[string]any, len(v))
	for k, item := range v {
		cp[k] = deepCopyJSONValue(item)
	}
	return cp
}

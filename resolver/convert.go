package resolver

import (
	"slices"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/model"
	"github.com/erraggy/oasresolve/oaserrors"
)

// build assembles the document model from the merged document fragment,
// the merged operations and the reconciled registry.
func (p *pass) build() *model.Document {
	df := p.docDef
	src := ""
	if len(df.sources) > 0 {
		src = df.sources[0]
	}
	doc := &model.Document{
		OpenAPI:      p.cfg.OpenAPIVersion,
		Info:         p.info(df.Info),
		Servers:      p.servers(df.Servers, "servers", src),
		ExternalDocs: p.externalDocs(df.ExternalDocs, "externalDocs"),
		Security:     p.security(df.security),
		Extra:        p.extensions(df.Extensions, "document", "document"),
		Paths:        model.Paths{},
	}
	for _, name := range p.tagList {
		b := p.buckets[bucketKey{model.KindTags, name}]
		t := b.def.Interface().(*decl.Tag)
		path := keyPath("tags", name)
		doc.Tags = append(doc.Tags, &model.Tag{
			Name:         name,
			Description:  deref(t.Description),
			ExternalDocs: p.externalDocs(t.ExternalDocs, joinPath(path, "externalDocs")),
			Extra:        p.extensions(t.Extensions, "tag", path),
		})
	}
	if c := p.components(); !c.Empty() {
		doc.Components = c
	}
	for _, op := range p.ops {
		p.addOperation(doc, op)
	}
	return doc
}

func (p *pass) addOperation(doc *model.Document, op *mergedOp) {
	f := op.frag
	at := op.String()
	out := &model.Operation{
		Tags:         operationTags(f.Tags),
		ExternalDocs: p.externalDocs(f.ExternalDocs, joinPath(at, "externalDocs")),
		Servers:      p.servers(f.Servers, joinPath(at, "servers"), op.source),
		RequestBody:  p.requestBody(f.RequestBody, joinPath(at, "requestBody"), op.source, op.consumes),
		Responses:    p.responses(f.Responses, joinPath(at, "responses"), op.source, op.produces),
		Callbacks:    p.callbacks(f.Callbacks, joinPath(at, "callbacks"), op.source),
		Security:     p.security(op.security),
		Extra:        p.extensions(f.Extensions, "operation", at),
	}
	if o := f.Operation; o != nil {
		out.OperationID = deref(o.OperationID)
		out.Summary = deref(o.Summary)
		out.Description = deref(o.Description)
		out.Deprecated = isTrue(o.Deprecated)
	}
	for _, prm := range f.Parameters {
		if mp := p.parameter(prm, joinPath(at, "parameters"), op.source); mp != nil {
			out.Parameters = append(out.Parameters, mp)
		}
	}

	item := doc.Paths[op.path]
	if item == nil {
		item = &model.PathItem{}
		doc.Paths[op.path] = item
	}
	if item.GetOperation(op.method) != nil {
		p.fail(&oaserrors.InvalidDeclarationError{
			Kind: string(decl.KindEndpoint), Field: "path", Value: at,
			Message: "another method already binds this operation", Source: op.source,
		})
		return
	}
	item.SetOperation(op.method, out)
	op.built = out
}

// operationTags lists tag names in first-seen order.
func operationTags(tags []decl.Tag) []string {
	var out []string
	for _, t := range tags {
		name, ok := firstSet(t.Name, t.Ref)
		if ok && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

func (p *pass) info(in *decl.Info) *model.Info {
	if in == nil {
		return nil
	}
	out := &model.Info{
		Title:          deref(in.Title),
		Description:    deref(in.Description),
		TermsOfService: deref(in.TermsOfService),
		Version:        deref(in.Version),
		Summary:        deref(in.Summary),
		Extra:          p.extensions(in.Extensions, "info", "info"),
	}
	if c := in.Contact; c != nil {
		out.Contact = &model.Contact{
			Name:  deref(c.Name),
			URL:   deref(c.URL),
			Email: deref(c.Email),
			Extra: p.extensions(c.Extensions, "contact", "info.contact"),
		}
	}
	if l := in.License; l != nil {
		out.License = &model.License{
			Name:       deref(l.Name),
			URL:        deref(l.URL),
			Identifier: deref(l.Identifier),
			Extra:      p.extensions(l.Extensions, "license", "info.license"),
		}
	}
	return out
}

func (p *pass) externalDocs(in *decl.ExternalDocumentation, path string) *model.ExternalDocs {
	if in == nil {
		return nil
	}
	return &model.ExternalDocs{
		Description: deref(in.Description),
		URL:         deref(in.URL),
		Extra:       p.extensions(in.Extensions, "externalDocs", path),
	}
}

func (p *pass) servers(in []decl.Server, path, src string) []*model.Server {
	var out []*model.Server
	for _, s := range in {
		if s.URL == nil {
			p.fail(&oaserrors.InvalidDeclarationError{
				Kind: string(decl.KindServer), Field: "url", Message: "required at " + path, Source: src,
			})
			continue
		}
		spath := keyPath(path, *s.URL)
		ms := &model.Server{
			URL:         *s.URL,
			Description: deref(s.Description),
			Extra:       p.extensions(s.Extensions, "server", spath),
		}
		for _, v := range s.Variables {
			if v.Name == nil {
				continue
			}
			if ms.Variables == nil {
				ms.Variables = make(map[string]model.ServerVariable)
			}
			ms.Variables[*v.Name] = model.ServerVariable{
				Enum:        v.Enumeration,
				Default:     deref(v.DefaultValue),
				Description: deref(v.Description),
				Extra:       p.extensions(v.Extensions, "serverVariable", keyPath(joinPath(spath, "variables"), *v.Name)),
			}
		}
		out = append(out, ms)
	}
	return out
}

// security converts the nearest declared requirements. A declared but
// empty list means "no security" and stays non-nil.
func (p *pass) security(s *securityDecl) []model.SecurityRequirement {
	if s == nil {
		return nil
	}
	out := make([]model.SecurityRequirement, 0, len(s.alternatives))
	for _, alt := range s.alternatives {
		req := model.SecurityRequirement{}
		for _, r := range alt.requirements {
			if r.Name == nil {
				p.fail(&oaserrors.InvalidDeclarationError{
					Kind: string(decl.KindSecurityRequirement), Field: "name",
					Message: "a security requirement needs a scheme name", Source: alt.source,
				})
				continue
			}
			p.checkSecurityName(*r.Name, alt.source)
			scopes := req[*r.Name]
			if scopes == nil {
				scopes = []string{}
			}
			for _, sc := range r.Scopes {
				if !slices.Contains(scopes, sc) {
					scopes = append(scopes, sc)
				}
			}
			req[*r.Name] = scopes
		}
		out = append(out, req)
	}
	return out
}

// schema converts a schema declaration. A ref keeps only its description;
// an implementation becomes a component ref, on the items of an array.
func (p *pass) schema(s *decl.Schema, path, src string) *model.Schema {
	if s == nil {
		return nil
	}
	if s.Ref != nil {
		return &model.Schema{Ref: p.ref(model.KindSchemas, *s.Ref, src), Description: deref(s.Description)}
	}
	typ := deref(s.Type)
	if s.Implementation != nil && typ != model.TypeArray {
		return &model.Schema{Ref: p.implementationRef(*s.Implementation, src), Description: deref(s.Description)}
	}
	out := &model.Schema{
		Title:            deref(s.Title),
		Description:      deref(s.Description),
		Type:             typ,
		Format:           deref(s.Format),
		Default:          scalarValue(s.DefaultValue, typ),
		Example:          scalarValue(s.Example, typ),
		MultipleOf:       s.MultipleOf,
		Maximum:          s.Maximum,
		ExclusiveMaximum: isTrue(s.ExclusiveMaximum),
		Minimum:          s.Minimum,
		ExclusiveMinimum: isTrue(s.ExclusiveMinimum),
		MaxLength:        s.MaxLength,
		MinLength:        s.MinLength,
		Pattern:          deref(s.Pattern),
		MaxItems:         s.MaxItems,
		MinItems:         s.MinItems,
		UniqueItems:      isTrue(s.UniqueItems),
		MaxProperties:    s.MaxProperties,
		MinProperties:    s.MinProperties,
		Nullable:         isTrue(s.Nullable),
		ReadOnly:         isTrue(s.ReadOnly),
		WriteOnly:        isTrue(s.WriteOnly),
		Deprecated:       isTrue(s.Deprecated),
		Not:              p.schema(s.Not, joinPath(path, "not"), src),
		AllOf:            p.schemaList(s.AllOf, joinPath(path, "allOf"), src),
		AnyOf:            p.schemaList(s.AnyOf, joinPath(path, "anyOf"), src),
		OneOf:            p.schemaList(s.OneOf, joinPath(path, "oneOf"), src),
		ExternalDocs:     p.externalDocs(s.ExternalDocs, joinPath(path, "externalDocs")),
		Extra:            p.extensions(s.Extensions, "schema", path),
	}
	for _, e := range s.Enumeration {
		out.Enum = append(out.Enum, scalarValue(&e, typ))
	}
	switch {
	case s.Items != nil:
		out.Items = p.schema(s.Items, joinPath(path, "items"), src)
	case s.Implementation != nil:
		out.Items = &model.Schema{Ref: p.implementationRef(*s.Implementation, src)}
	}
	out.Required = append(out.Required, s.RequiredProperties...)
	for _, prop := range s.Properties {
		if prop.Name == nil {
			p.fail(&oaserrors.InvalidDeclarationError{
				Kind: string(decl.KindSchema), Field: "properties.name",
				Message: "a property needs a name at " + path, Source: src,
			})
			continue
		}
		if out.Properties == nil {
			out.Properties = make(map[string]*model.Schema)
		}
		out.Properties[*prop.Name] = p.schema(&prop, keyPath(joinPath(path, "properties"), *prop.Name), src)
		if isTrue(prop.Required) && !slices.Contains(out.Required, *prop.Name) {
			out.Required = append(out.Required, *prop.Name)
		}
	}
	if s.DiscriminatorProperty != nil {
		out.Discriminator = &model.Discriminator{PropertyName: *s.DiscriminatorProperty}
		for _, m := range s.DiscriminatorMapping {
			if m.Value == nil || m.Schema == nil {
				continue
			}
			if out.Discriminator.Mapping == nil {
				out.Discriminator.Mapping = make(map[string]string)
			}
			out.Discriminator.Mapping[*m.Value] = p.implementationRef(*m.Schema, src)
		}
	}
	return out
}

func (p *pass) schemaList(in []decl.Schema, path, src string) []*model.Schema {
	var out []*model.Schema
	for i := range in {
		out = append(out, p.schema(&in[i], indexPath(path, i), src))
	}
	return out
}

// scalarValue types a literal by its schema type: integers, numbers and
// booleans are parsed, anything else stays a string.
func scalarValue(value *string, schemaType string) any {
	if value == nil {
		return nil
	}
	switch schemaType {
	case model.TypeInteger:
		if n, err := strconv.ParseInt(*value, 10, 64); err == nil {
			return n
		}
	case model.TypeNumber:
		if f, err := strconv.ParseFloat(*value, 64); err == nil {
			return f
		}
	case model.TypeBoolean:
		return *value == "true"
	}
	return *value
}

func schemaType(s *decl.Schema) string {
	if s == nil {
		return ""
	}
	return deref(s.Type)
}

func explode(v *string) *bool {
	if v == nil {
		return nil
	}
	b := *v == "true"
	return &b
}

func (p *pass) parameter(prm decl.Parameter, path, src string) *model.Parameter {
	if prm.Ref != nil {
		return &model.Parameter{
			Ref:         p.ref(model.KindParameters, *prm.Ref, src),
			Name:        deref(prm.Name),
			Description: deref(prm.Description),
		}
	}
	ppath := keyPath(path, parameterKey(&prm))
	return &model.Parameter{
		Name:            deref(prm.Name),
		In:              deref(prm.In),
		Description:     deref(prm.Description),
		Required:        isTrue(prm.Required),
		Deprecated:      isTrue(prm.Deprecated),
		AllowEmptyValue: isTrue(prm.AllowEmptyValue),
		Style:           deref(prm.Style),
		Explode:         explode(prm.Explode),
		AllowReserved:   isTrue(prm.AllowReserved),
		Schema:          p.schema(prm.Schema, joinPath(ppath, "schema"), src),
		Example:         scalarValue(prm.Example, schemaType(prm.Schema)),
		Examples:        p.examples(prm.Examples, joinPath(ppath, "examples"), src),
		Content:         p.content(prm.Content, nil, joinPath(ppath, "content"), src),
		Extra:           p.extensions(prm.Extensions, "parameter", ppath),
	}
}

// header converts a header; a header declaring both schema and content is
// dropped.
func (p *pass) header(h decl.Header, path, src string) *model.Header {
	if h.Ref != nil {
		return &model.Header{Ref: p.ref(model.KindHeaders, *h.Ref, src), Description: deref(h.Description)}
	}
	if h.Schema != nil && len(h.Content) > 0 {
		p.fail(&oaserrors.ConflictingFieldError{
			Element: "header", Name: deref(h.Name), Path: path,
			Fields: []string{"schema", "content"}, Source: src,
		})
		return nil
	}
	return &model.Header{
		Description:     deref(h.Description),
		Required:        isTrue(h.Required),
		Deprecated:      isTrue(h.Deprecated),
		AllowEmptyValue: isTrue(h.AllowEmptyValue),
		Style:           deref(h.Style),
		Explode:         explode(h.Explode),
		Schema:          p.schema(h.Schema, joinPath(path, "schema"), src),
		Example:         scalarValue(h.Example, schemaType(h.Schema)),
		Examples:        p.examples(h.Examples, joinPath(path, "examples"), src),
		Content:         p.content(h.Content, nil, joinPath(path, "content"), src),
		Extra:           p.extensions(h.Extensions, "header", path),
	}
}

func (p *pass) headers(in []decl.Header, path, src string) map[string]*model.Header {
	var out map[string]*model.Header
	for _, h := range in {
		if h.Name == nil {
			p.fail(&oaserrors.InvalidDeclarationError{
				Kind: "header", Field: "name", Message: "a header needs a name at " + path, Source: src,
			})
			continue
		}
		if mh := p.header(h, keyPath(path, *h.Name), src); mh != nil {
			if out == nil {
				out = make(map[string]*model.Header)
			}
			out[*h.Name] = mh
		}
	}
	return out
}

// content converts media type entries. Entries without a media type expand
// to every media type in media, or to the configured default.
func (p *pass) content(in []decl.Content, media []string, path, src string) map[string]*model.MediaType {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]*model.MediaType)
	for _, c := range in {
		types := media
		if c.MediaType != nil {
			types = []string{*c.MediaType}
		} else if len(types) == 0 {
			types = []string{p.cfg.DefaultMediaType}
		}
		cpath := keyPath(path, types[0])
		mt := &model.MediaType{
			Schema:   p.schema(c.Schema, joinPath(cpath, "schema"), src),
			Example:  scalarValue(c.Example, schemaType(c.Schema)),
			Examples: p.examples(c.Examples, joinPath(cpath, "examples"), src),
			Extra:    p.extensions(c.Extensions, "mediaType", cpath),
		}
		for _, e := range c.Encoding {
			if e.Name == nil {
				continue
			}
			if mt.Encoding == nil {
				mt.Encoding = make(map[string]*model.Encoding)
			}
			epath := keyPath(joinPath(cpath, "encoding"), *e.Name)
			mt.Encoding[*e.Name] = &model.Encoding{
				ContentType:   deref(e.ContentType),
				Headers:       p.headers(e.Headers, joinPath(epath, "headers"), src),
				Style:         deref(e.Style),
				Explode:       explode(e.Explode),
				AllowReserved: isTrue(e.AllowReserved),
				Extra:         p.extensions(e.Extensions, "encoding", epath),
			}
		}
		for i, t := range types {
			if i == 0 {
				out[t] = mt
				continue
			}
			out[t] = mt.DeepCopy()
		}
	}
	return out
}

func (p *pass) examples(in []decl.ExampleObject, path, src string) map[string]*model.Example {
	var out map[string]*model.Example
	for _, e := range in {
		name, ok := firstSet(e.Name, e.Ref)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[string]*model.Example)
		}
		out[name] = p.example(e, keyPath(path, name), src)
	}
	return out
}

func (p *pass) example(e decl.ExampleObject, path, src string) *model.Example {
	if e.Ref != nil {
		return &model.Example{Ref: p.ref(model.KindExamples, *e.Ref, src), Description: deref(e.Description)}
	}
	out := &model.Example{
		Summary:       deref(e.Summary),
		Description:   deref(e.Description),
		ExternalValue: deref(e.ExternalValue),
		Extra:         p.extensions(e.Extensions, "example", path),
	}
	if e.Value != nil {
		out.Value = *e.Value
	}
	return out
}

func (p *pass) requestBody(rb *decl.RequestBody, path, src string, consumes []string) *model.RequestBody {
	if rb == nil {
		return nil
	}
	if rb.Ref != nil {
		return &model.RequestBody{Ref: p.ref(model.KindRequestBodies, *rb.Ref, src), Description: deref(rb.Description)}
	}
	return &model.RequestBody{
		Description: deref(rb.Description),
		Content:     p.content(rb.Content, consumes, joinPath(path, "content"), src),
		Required:    isTrue(rb.Required),
		Extra:       p.extensions(rb.Extensions, "requestBody", path),
	}
}

func (p *pass) responses(in []decl.APIResponse, path, src string, produces []string) map[string]*model.Response {
	var out map[string]*model.Response
	for _, r := range in {
		if out == nil {
			out = make(map[string]*model.Response)
		}
		code := responseCode(&r)
		out[code] = p.response(r, keyPath(path, code), src, produces)
	}
	return out
}

func (p *pass) response(r decl.APIResponse, path, src string, produces []string) *model.Response {
	if r.Ref != nil {
		return &model.Response{Ref: p.ref(model.KindResponses, *r.Ref, src), Description: deref(r.Description)}
	}
	out := &model.Response{
		Description: deref(r.Description),
		Headers:     p.headers(r.Headers, joinPath(path, "headers"), src),
		Content:     p.content(r.Content, produces, joinPath(path, "content"), src),
		Extra:       p.extensions(r.Extensions, "response", path),
	}
	for _, l := range r.Links {
		name, ok := firstSet(l.Name, l.Ref)
		if !ok {
			continue
		}
		if out.Links == nil {
			out.Links = make(map[string]*model.Link)
		}
		out.Links[name] = p.link(l, keyPath(joinPath(path, "links"), name), src)
	}
	return out
}

func (p *pass) link(l decl.Link, path, src string) *model.Link {
	if l.Ref != nil {
		return &model.Link{Ref: p.ref(model.KindLinks, *l.Ref, src), Description: deref(l.Description)}
	}
	out := &model.Link{
		OperationRef: deref(l.OperationRef),
		OperationID:  deref(l.OperationID),
		Description:  deref(l.Description),
		Extra:        p.extensions(l.Extensions, "link", path),
	}
	if l.RequestBody != nil {
		out.RequestBody = *l.RequestBody
	}
	for _, lp := range l.Parameters {
		if lp.Name == nil {
			continue
		}
		if out.Parameters == nil {
			out.Parameters = make(map[string]any)
		}
		out.Parameters[*lp.Name] = deref(lp.Expression)
	}
	if l.Server != nil {
		if servers := p.servers([]decl.Server{*l.Server}, joinPath(path, "server"), src); len(servers) > 0 {
			out.Server = servers[0]
		}
	}
	return out
}

func (p *pass) callbacks(in []decl.Callback, path, src string) map[string]*model.Callback {
	var out map[string]*model.Callback
	for _, c := range in {
		name, ok := firstSet(c.Name, c.Ref)
		if !ok {
			p.fail(&oaserrors.InvalidDeclarationError{
				Kind: string(decl.KindCallback), Field: "name", Message: "a callback needs a name at " + path, Source: src,
			})
			continue
		}
		if out == nil {
			out = make(map[string]*model.Callback)
		}
		out[name] = p.callback(c, keyPath(path, name), src)
	}
	return out
}

func (p *pass) callback(c decl.Callback, path, src string) *model.Callback {
	if c.Ref != nil {
		return &model.Callback{Ref: p.ref(model.KindCallbacks, *c.Ref, src)}
	}
	item := &model.PathItem{}
	for _, co := range c.Operations {
		if co.Method == nil {
			p.fail(&oaserrors.InvalidDeclarationError{
				Kind: string(decl.KindCallback), Field: "operations.method", Message: "required at " + path, Source: src,
			})
			continue
		}
		opath := keyPath(path, *co.Method)
		op := &model.Operation{
			Summary:     deref(co.Summary),
			Description: deref(co.Description),
			RequestBody: p.requestBody(co.RequestBody, joinPath(opath, "requestBody"), src, nil),
			Responses:   p.responses(co.Responses, joinPath(opath, "responses"), src, nil),
			Extra:       p.extensions(co.Extensions, "operation", opath),
		}
		for _, prm := range p.checkParameters(co.Parameters, opath, src) {
			op.Parameters = append(op.Parameters, p.parameter(prm, joinPath(opath, "parameters"), src))
		}
		if co.Security != nil {
			s := &securityDecl{}
			for _, r := range co.Security {
				s.add(src, r)
			}
			op.Security = p.security(s)
		}
		if !item.SetOperation(*co.Method, op) {
			p.fail(&oaserrors.InvalidDeclarationError{
				Kind: string(decl.KindCallback), Field: "operations.method", Value: *co.Method,
				Message: "unknown HTTP method", Source: src,
			})
		}
	}
	return &model.Callback{
		Expressions: map[string]*model.PathItem{deref(c.CallbackURLExpression): item},
		Extra:       p.extensions(c.Extensions, "callback", path),
	}
}

func (p *pass) securityScheme(s *decl.SecurityScheme, path string) *model.SecurityScheme {
	out := &model.SecurityScheme{
		Type:             deref(s.Type),
		Description:      deref(s.Description),
		Name:             deref(s.APIKeyName),
		In:               deref(s.In),
		Scheme:           deref(s.Scheme),
		BearerFormat:     deref(s.BearerFormat),
		OpenIDConnectURL: deref(s.OpenIDConnectURL),
		Extra:            p.extensions(s.Extensions, "securityScheme", path),
	}
	if f := s.Flows; f != nil {
		fpath := joinPath(path, "flows")
		out.Flows = &model.OAuthFlows{
			Implicit:          p.oauthFlow(f.Implicit, joinPath(fpath, "implicit")),
			Password:          p.oauthFlow(f.Password, joinPath(fpath, "password")),
			ClientCredentials: p.oauthFlow(f.ClientCredentials, joinPath(fpath, "clientCredentials")),
			AuthorizationCode: p.oauthFlow(f.AuthorizationCode, joinPath(fpath, "authorizationCode")),
			Extra:             p.extensions(f.Extensions, "oauthFlows", fpath),
		}
	}
	return out
}

func (p *pass) oauthFlow(f *decl.OAuthFlow, path string) *model.OAuthFlow {
	if f == nil {
		return nil
	}
	out := &model.OAuthFlow{
		AuthorizationURL: deref(f.AuthorizationURL),
		TokenURL:         deref(f.TokenURL),
		RefreshURL:       deref(f.RefreshURL),
		Scopes:           make(map[string]string, len(f.Scopes)),
		Extra:            p.extensions(f.Extensions, "oauthFlow", path),
	}
	for _, sc := range f.Scopes {
		if sc.Name != nil {
			out.Scopes[*sc.Name] = deref(sc.Description)
		}
	}
	return out
}

// components converts every defined registry entry.
func (p *pass) components() *model.Components {
	c := &model.Components{}
	for _, key := range p.bucketKeys {
		b := p.buckets[key]
		if !b.defined() || key.kind == model.KindTags {
			continue
		}
		path := joinPath("components", keyPath(key.kind, key.name))
		src := b.source
		switch v := b.def.Interface().(type) {
		case *decl.Schema:
			c.Schemas = put(c.Schemas, key.name, p.schema(v, path, src))
		case *decl.APIResponse:
			c.Responses = put(c.Responses, key.name, p.response(*v, path, src, nil))
		case *decl.Parameter:
			if v.Schema != nil && len(v.Content) > 0 {
				p.fail(&oaserrors.ConflictingFieldError{
					Element: "parameter", Name: key.name, In: deref(v.In), Path: path,
					Fields: []string{"schema", "content"}, Source: src,
				})
				continue
			}
			c.Parameters = put(c.Parameters, key.name, p.parameter(*v, path, src))
		case *decl.ExampleObject:
			c.Examples = put(c.Examples, key.name, p.example(*v, path, src))
		case *decl.RequestBody:
			c.RequestBodies = put(c.RequestBodies, key.name, p.requestBody(v, path, src, nil))
		case *decl.Header:
			if h := p.header(*v, path, src); h != nil {
				c.Headers = put(c.Headers, key.name, h)
			}
		case *decl.SecurityScheme:
			c.SecuritySchemes = put(c.SecuritySchemes, key.name, p.securityScheme(v, path))
		case *decl.Link:
			c.Links = put(c.Links, key.name, p.link(*v, path, src))
		case *decl.Callback:
			c.Callbacks = put(c.Callbacks, key.name, p.callback(*v, path, src))
		}
	}
	return c
}

func put[T any](m map[string]*T, name string, v *T) map[string]*T {
	if m == nil {
		m = make(map[string]*T)
	}
	m[name] = v
	return m
}

// extensions converts extension declarations to an extension map. Keys
// that are not valid extensions of owner are dropped with an
// InvalidExtensionKeyError.
func (p *pass) extensions(in []decl.Extension, owner, path string) map[string]any {
	var out map[string]any
	for _, e := range in {
		key := deref(e.Name)
		if reason := model.ValidateExtensionKey(owner, key); reason != "" {
			p.fail(&oaserrors.InvalidExtensionKeyError{Path: path, Key: key, Reason: reason, Source: e.Source})
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[key] = p.extensionValue(e, path)
	}
	return out
}

// extensionValue returns the declared value, parsed as YAML (a superset of
// JSON) when the extension asks for it.
func (p *pass) extensionValue(e decl.Extension, path string) any {
	raw := deref(e.Value)
	if !isTrue(e.ParseValue) {
		return raw
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		p.warn(newExtensionValueWarning(deref(e.Name), path, e.Source, err))
		return raw
	}
	return v
}

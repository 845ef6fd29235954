package resolver

import (
	"bytes"
	"reflect"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/internal/naming"
	"github.com/erraggy/oasresolve/model"
	"github.com/erraggy/oasresolve/oaserrors"
)

// bucketKey identifies one registry entry: a component kind and its name.
type bucketKey struct {
	kind string
	name string
}

func (k bucketKey) String() string {
	return k.kind + "/" + k.name
}

// definition is one complete declaration of a registry entry.
type definition struct {
	scope  decl.Scope
	source string
	value  reflect.Value
}

// bucket gathers every declaration naming one registry entry.
type bucket struct {
	key  bucketKey
	defs []definition
	// named is set when a tag was declared by name alone.
	named bool
	// refs are the sources of ref-only declarations.
	refs     []string
	firstSeq int
	// def is the merged complete definition; invalid when there is none.
	def    reflect.Value
	source string
}

func (b *bucket) defined() bool {
	return b.def.IsValid()
}

// identityFields never make a declaration complete on their own.
var identityFields = map[string]bool{
	"Name":               true,
	"SecuritySchemeName": true,
	"Ref":                true,
	"Hidden":             true,
}

// resolveRefs reconciles registry declarations, then builds the document
// with every reference checked against the reconciled registry.
func (p *pass) resolveRefs() {
	p.collectDefinitions()
	p.reconcile()
	if len(p.global) > 0 {
		return
	}
	p.doc = p.build()
	p.log.Debug("resolved references", "buckets", len(p.buckets), "unresolved", len(p.unresolved))
}

func (p *pass) bucket(kind, name string, seq int) *bucket {
	key := bucketKey{kind: kind, name: name}
	b, ok := p.buckets[key]
	if !ok {
		b = &bucket{key: key, firstSeq: seq}
		p.buckets[key] = b
	}
	if seq < b.firstSeq {
		b.firstSeq = seq
	}
	return b
}

func (p *pass) collectDefinitions() {
	// type schemas are named first so implementations declared earlier
	// than their type still resolve to the right component.
	for _, d := range p.decls {
		if s, ok := d.Annotation.(*decl.Schema); ok && d.Scope.Level() == decl.LevelType {
			name := p.typeSchemaName(d.Scope, s)
			p.typeSchemas[qualifiedType(d.Scope)] = name
			if _, taken := p.typeSchemas[d.Scope.Type]; !taken {
				p.typeSchemas[d.Scope.Type] = name
			}
		}
	}

	for _, d := range p.decls {
		switch a := d.Annotation.(type) {
		case *decl.Tag:
			p.collectTag(d, a)
		case *decl.Tags:
			for i := range a.Value {
				p.collectTag(d, &a.Value[i])
			}
			for _, ref := range a.Refs {
				b := p.bucket(model.KindTags, ref, d.Seq)
				b.refs = append(b.refs, d.Location())
			}
		case *decl.OpenAPIDefinition:
			for i := range a.Tags {
				p.collectTag(d, &a.Tags[i])
			}
			if a.Components != nil {
				p.collectComponents(d, a.Components)
			}
		case *decl.SecurityScheme:
			p.collectEntry(d, model.KindSecuritySchemes, a.SecuritySchemeName, a.Ref, reflect.ValueOf(a))
		case *decl.SecuritySchemes:
			for i := range a.Value {
				s := &a.Value[i]
				p.collectEntry(d, model.KindSecuritySchemes, s.SecuritySchemeName, s.Ref, reflect.ValueOf(s))
			}
		case *decl.Schema:
			switch {
			case d.Scope.Level() == decl.LevelType && a.Ref == nil:
				name := p.typeSchemas[qualifiedType(d.Scope)]
				p.define(d, model.KindSchemas, name, reflect.ValueOf(a))
			case d.Scope.Level() == decl.LevelType:
				p.collectEntry(d, model.KindSchemas, nil, a.Ref, reflect.ValueOf(a))
			case d.Scope.Level() == decl.LevelPackage:
				p.collectEntry(d, model.KindSchemas, a.Name, a.Ref, reflect.ValueOf(a))
			}
		}
	}
}

func (p *pass) typeSchemaName(s decl.Scope, schema *decl.Schema) string {
	if schema.Name != nil {
		return *schema.Name
	}
	return p.namer.Name(naming.Context{Package: s.Package, Type: s.Type})
}

// implementationName maps a type named by a schema implementation to its
// component schema name.
func (p *pass) implementationName(impl string) string {
	if name, ok := p.typeSchemas[impl]; ok {
		return name
	}
	return p.namer.Name(naming.SplitQualified(impl))
}

func (p *pass) collectTag(d decl.Declaration, t *decl.Tag) {
	switch {
	case t.IsEmpty():
	case t.Ref != nil:
		b := p.bucket(model.KindTags, *t.Ref, d.Seq)
		b.refs = append(b.refs, d.Location())
	case t.Name == nil:
		p.fail(&oaserrors.InvalidDeclarationError{
			Kind: string(decl.KindTag), Field: "name",
			Message: "a tag needs a name or a ref", Source: d.Location(),
		})
	case complete(reflect.ValueOf(t)):
		p.define(d, model.KindTags, *t.Name, reflect.ValueOf(t))
	default:
		p.bucket(model.KindTags, *t.Name, d.Seq).named = true
	}
}

func (p *pass) collectComponents(d decl.Declaration, c *decl.Components) {
	collect := func(kind string, list reflect.Value) {
		for i := 0; i < list.Len(); i++ {
			el := list.Index(i).Addr()
			name := el.Elem().FieldByName("Name")
			if kind == model.KindSecuritySchemes {
				name = el.Elem().FieldByName("SecuritySchemeName")
			}
			ref := el.Elem().FieldByName("Ref")
			p.collectEntry(d, kind, name.Interface().(*string), ref.Interface().(*string), el)
		}
	}
	collect(model.KindSchemas, reflect.ValueOf(c.Schemas))
	collect(model.KindResponses, reflect.ValueOf(c.Responses))
	collect(model.KindParameters, reflect.ValueOf(c.Parameters))
	collect(model.KindExamples, reflect.ValueOf(c.Examples))
	collect(model.KindRequestBodies, reflect.ValueOf(c.RequestBodies))
	collect(model.KindHeaders, reflect.ValueOf(c.Headers))
	collect(model.KindSecuritySchemes, reflect.ValueOf(c.SecuritySchemes))
	collect(model.KindLinks, reflect.ValueOf(c.Links))
	collect(model.KindCallbacks, reflect.ValueOf(c.Callbacks))
}

// collectEntry files a registry declaration: complete ones define the
// entry, ref-only or name-only ones mention it.
func (p *pass) collectEntry(d decl.Declaration, kind string, name, ref *string, v reflect.Value) {
	switch {
	case ref != nil:
		target := *ref
		if _, n, ok := model.ParseComponentRef(model.ExpandRef(kind, target)); ok {
			target = n
		}
		b := p.bucket(kind, target, d.Seq)
		b.refs = append(b.refs, d.Location())
	case name == nil:
		p.fail(&oaserrors.InvalidDeclarationError{
			Kind: kind, Field: "name",
			Message: "a registry entry needs a name", Source: d.Location(),
		})
	case complete(v):
		p.define(d, kind, *name, v)
	default:
		b := p.bucket(kind, *name, d.Seq)
		b.refs = append(b.refs, d.Location())
	}
}

func (p *pass) define(d decl.Declaration, kind, name string, v reflect.Value) {
	b := p.bucket(kind, name, d.Seq)
	b.defs = append(b.defs, definition{scope: d.Scope, source: d.Location(), value: v})
}

// complete reports whether a declaration supplies anything beyond its
// identity. Declarations carrying a ref are never complete.
func complete(v reflect.Value) bool {
	v = v.Elem()
	if ref := v.FieldByName("Ref"); ref.IsValid() && !ref.IsNil() {
		return false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || identityFields[f.Name] {
			continue
		}
		switch fv := v.Field(i); fv.Kind() {
		case reflect.Pointer, reflect.Slice:
			if !fv.IsNil() {
				return true
			}
		}
	}
	return false
}

// reconcile merges each bucket's complete declarations. Declarations from
// one scope merge like same-level annotations; complete declarations from
// more than one scope are a DuplicateDefinitionError.
func (p *pass) reconcile() {
	keys := make([]bucketKey, 0, len(p.buckets))
	for k := range p.buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].kind != keys[j].kind {
			return keys[i].kind < keys[j].kind
		}
		return keys[i].name < keys[j].name
	})
	p.bucketKeys = keys

	for _, k := range keys {
		b := p.buckets[k]
		if len(b.defs) == 0 {
			if k.kind == model.KindTags && b.named {
				b.def = reflect.ValueOf(&decl.Tag{Name: decl.Ptr(k.name)})
				continue
			}
			for _, src := range b.refs {
				if k.kind == model.KindTags {
					p.unresolvedRef(k.kind, k.name, src, false)
					continue
				}
				p.ref(k.kind, k.name, src)
			}
			continue
		}

		groups := p.groupDefinitions(b)
		if len(groups) > 1 {
			if !p.cfg.DeduplicateEquivalent || !equivalent(groups) {
				var sources []string
				for _, d := range b.defs {
					sources = append(sources, d.source)
				}
				sort.Strings(sources)
				p.global = append(p.global, &oaserrors.DuplicateDefinitionError{Kind: k.kind, Name: k.name, Sources: sources})
				continue
			}
			var sources []string
			for _, g := range groups {
				sources = append(sources, g.source)
			}
			p.warn(newDeduplicatedWarning(k.kind, k.name, sources))
		}
		b.def, b.source = groups[0].value, groups[0].source
	}

	for _, k := range keys {
		if b := p.buckets[k]; k.kind == model.KindTags && b.defined() {
			p.tagList = append(p.tagList, k.name)
		}
	}
	sort.SliceStable(p.tagList, func(i, j int) bool {
		return p.buckets[bucketKey{model.KindTags, p.tagList[i]}].firstSeq <
			p.buckets[bucketKey{model.KindTags, p.tagList[j]}].firstSeq
	})
}

// groupDefinitions merges the definitions of a bucket scope by scope, in
// first-seen order.
func (p *pass) groupDefinitions(b *bucket) []definition {
	var (
		groups  []definition
		mergers []*merger
	)
	for _, d := range b.defs {
		i := -1
		for j, g := range groups {
			if g.scope == d.scope {
				i = j
				break
			}
		}
		if i < 0 {
			groups = append(groups, definition{scope: d.scope, source: d.source, value: reflect.New(d.value.Type().Elem())})
			mergers = append(mergers, newSameLevelMerger())
			i = len(groups) - 1
		}
		mergers[i].overlay(groups[i].value.Elem(), d.value.Elem(), "")
	}
	for _, m := range mergers {
		for _, err := range m.poison.errors(b.key.String()) {
			p.fail(err)
		}
	}
	return groups
}

// equivalent reports whether every group encodes to the same YAML.
func equivalent(groups []definition) bool {
	var first []byte
	for i, g := range groups {
		out, err := yaml.Marshal(g.value.Interface())
		if err != nil {
			return false
		}
		if i == 0 {
			first = out
			continue
		}
		if !bytes.Equal(first, out) {
			return false
		}
	}
	return true
}

// ref expands a reference into its document form and checks local
// component refs against the registry. Unmatched refs are carried through
// and reported.
func (p *pass) ref(kind, ref, source string) string {
	expanded := model.ExpandRef(kind, ref)
	if !model.IsLocalRef(expanded) {
		p.unresolvedRef(kind, expanded, source, true)
		return expanded
	}
	if k, name, ok := model.ParseComponentRef(expanded); ok {
		if b, found := p.buckets[bucketKey{k, name}]; !found || !b.defined() {
			p.unresolvedRef(k, expanded, source, false)
		}
	}
	return expanded
}

// implementationRef resolves a schema implementation to a component ref.
func (p *pass) implementationRef(impl, source string) string {
	return p.ref(model.KindSchemas, model.ComponentRef(model.KindSchemas, p.implementationName(impl)), source)
}

// checkSecurityName reports a requirement naming an undeclared scheme.
func (p *pass) checkSecurityName(name, source string) {
	if b, ok := p.buckets[bucketKey{model.KindSecuritySchemes, name}]; !ok || !b.defined() {
		p.unresolvedRef(model.KindSecuritySchemes, model.ComponentRef(model.KindSecuritySchemes, name), source, false)
	}
}

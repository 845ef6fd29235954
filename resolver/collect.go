package resolver

import (
	"reflect"
	"strings"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/model"
	"github.com/erraggy/oasresolve/oaserrors"
)

// enumValues lists the canonical spellings of each enumeration field,
// keyed by "Type.Field" or, for fields shared by several types, "Field".
var enumValues = map[string][]string{
	"Schema.Type": {
		model.TypeInteger, model.TypeNumber, model.TypeBoolean, model.TypeString,
		model.TypeObject, model.TypeArray, model.TypeNull,
	},
	"Parameter.In": {model.ParamInQuery, model.ParamInHeader, model.ParamInPath, model.ParamInCookie},
	"SecurityScheme.Type": {
		model.SchemeTypeAPIKey, model.SchemeTypeHTTP, model.SchemeTypeOAuth2,
		model.SchemeTypeOpenIDConnect, model.SchemeTypeMutualTLS,
	},
	"SecurityScheme.In": {model.ParamInQuery, model.ParamInHeader, model.ParamInCookie},
	"Style": {
		model.StyleForm, model.StyleSpaceDelimited, model.StylePipeDelimited,
		model.StyleDeepObject, model.StyleMatrix, model.StyleLabel, model.StyleSimple,
	},
	"Explode": {"true", "false"},
}

// collect normalizes default sentinels, validates enumerations, orders the
// declarations by Seq and groups them by scope.
func (p *pass) collect() {
	for _, d := range p.input.Sorted() {
		if d.Annotation == nil {
			p.fail(&oaserrors.InvalidDeclarationError{Message: "declaration has no annotation", Source: d.Location()})
			continue
		}
		n := decl.Normalize(d)
		if errs := canonicalize(n); len(errs) > 0 {
			for _, err := range errs {
				p.fail(err)
			}
			continue
		}
		p.decls = append(p.decls, n)
	}
	p.decls = p.decls.Sorted()
	for _, d := range p.decls {
		if _, ok := p.byScope[d.Scope]; !ok {
			p.scopes = append(p.scopes, d.Scope)
		}
		p.byScope[d.Scope] = append(p.byScope[d.Scope], d)
	}
	p.log.Debug("collected declarations", "count", len(p.decls), "scopes", len(p.scopes))
}

// canonicalize rewrites enumeration values to their canonical spelling in
// place. Matching is case-insensitive; unknown values are reported.
func canonicalize(d decl.Declaration) []error {
	var errs []error
	if ep, ok := d.Annotation.(*decl.Endpoint); ok && ep.Method != nil {
		m := strings.ToLower(*ep.Method)
		if !model.ValidMethod(m) {
			errs = append(errs, &oaserrors.InvalidDeclarationError{
				Kind: string(decl.KindEndpoint), Field: "method", Value: *ep.Method,
				Message: "unknown HTTP method", Source: d.Location(),
			})
		}
		ep.Method = &m
	}
	walkEnums(reflect.ValueOf(d.Annotation), func(owner, field string, v *string) {
		allowed, ok := enumValues[owner+"."+field]
		if !ok {
			allowed = enumValues[field]
		}
		for _, a := range allowed {
			if strings.EqualFold(a, *v) {
				*v = a
				return
			}
		}
		errs = append(errs, &oaserrors.InvalidDeclarationError{
			Kind:    string(d.Kind()),
			Field:   lowerFirst(owner) + "." + lowerFirst(field),
			Value:   *v,
			Message: "expected one of " + strings.Join(allowed, ", "),
			Source:  d.Location(),
		})
	})
	return errs
}

// walkEnums calls fn for every set `oas:"enum"` field reachable from v.
func walkEnums(v reflect.Value, fn func(owner, field string, v *string)) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			walkEnums(v.Elem(), fn)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			walkEnums(v.Index(i), fn)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := v.Field(i)
			if f.Tag.Get("oas") == "enum" {
				if !fv.IsNil() {
					fn(t.Name(), f.Name, fv.Interface().(*string))
				}
				continue
			}
			walkEnums(fv, fn)
		}
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

package resolver

import (
	"reflect"

	"github.com/erraggy/oasresolve/decl"
)

var schemaReflectType = reflect.TypeOf(decl.Schema{})

// filterHidden removes every hidden element before any merging happens.
//
//   - a hidden Operation removes the method scopes it covers (and their args)
//   - a hidden Schema, Parameter or RequestBody on an argument removes the
//     whole argument
//   - a hidden Schema on a type removes the component schema, and every
//     schema whose implementation names that type unless the type also
//     declares a visible Schema
//   - nested hidden elements (parameters, responses, properties, content
//     schemas, components entries) are removed from their parents
func (p *pass) filterHidden() {
	var hiddenOps []decl.Scope
	var hiddenTypes []decl.Scope
	hiddenArgs := make(map[decl.Scope]bool)
	visibleTypes := make(map[string]bool)
	for _, d := range p.decls {
		level := d.Scope.Level()
		switch a := d.Annotation.(type) {
		case *decl.Operation:
			if isTrue(a.Hidden) {
				hiddenOps = append(hiddenOps, d.Scope)
			}
		case *decl.Schema:
			if !isTrue(a.Hidden) {
				if level == decl.LevelType {
					visibleTypes[d.Scope.Type] = true
					visibleTypes[qualifiedType(d.Scope)] = true
				}
				continue
			}
			switch level {
			case decl.LevelType:
				hiddenTypes = append(hiddenTypes, d.Scope)
			case decl.LevelArg:
				hiddenArgs[d.Scope] = true
			}
		case *decl.Parameter:
			if level == decl.LevelArg && isTrue(a.Hidden) {
				hiddenArgs[d.Scope] = true
			}
		case *decl.RequestBody:
			if level == decl.LevelArg && isTrue(a.Hidden) {
				hiddenArgs[d.Scope] = true
			}
		}
	}

	// a visible schema of the same type keeps its references resolvable
	for _, sc := range hiddenTypes {
		if visibleTypes[qualifiedType(sc)] {
			continue
		}
		p.hiddenTypes[qualifiedType(sc)] = true
		if !visibleTypes[sc.Type] {
			p.hiddenTypes[sc.Type] = true
		}
	}

	kept := make(decl.Set, 0, len(p.decls))
	for _, d := range p.decls {
		switch {
		case d.Scope.Level() >= decl.LevelMethod && coveredBy(d.Scope, hiddenOps):
			p.hide("operation", d)
			continue
		case hiddenArgs[d.Scope]:
			p.hide("argument", d)
			continue
		}
		v := reflect.ValueOf(d.Annotation).Elem()
		if p.isHidden(v) {
			p.hide(string(d.Kind()), d)
			continue
		}
		declared := pluralLen(v)
		if n := p.prune(v); n > 0 {
			p.stats.Hidden += n
			p.log.Debug("removed hidden elements", "count", n, "source", d.Location())
		}
		if declared > 0 && pluralLen(v) == 0 {
			// every entry was hidden; what is left must not read as an
			// explicitly empty list
			continue
		}
		kept = append(kept, d)
	}

	p.decls = kept
	p.byScope = make(map[decl.Scope][]decl.Declaration)
	var scopes []decl.Scope
	for _, d := range kept {
		if _, ok := p.byScope[d.Scope]; !ok {
			scopes = append(scopes, d.Scope)
		}
		p.byScope[d.Scope] = append(p.byScope[d.Scope], d)
	}
	p.scopes = scopes
}

func (p *pass) hide(element string, d decl.Declaration) {
	p.stats.Hidden++
	p.warn(newHiddenWarning(element, d.Scope.String(), d.Location()))
}

// isHidden reports whether a struct value is hidden, either directly or
// because it is a schema implemented by a hidden type.
func (p *pass) isHidden(v reflect.Value) bool {
	if f := v.FieldByName("Hidden"); f.IsValid() && f.Kind() == reflect.Pointer && !f.IsNil() && f.Elem().Bool() {
		return true
	}
	if v.Type() == schemaReflectType {
		if impl := v.FieldByName("Implementation"); !impl.IsNil() && p.hiddenTypes[impl.Elem().String()] {
			return true
		}
	}
	return false
}

// prune removes hidden elements nested inside v and returns how many were
// removed. A list emptied by pruning becomes absent, not explicitly empty.
func (p *pass) prune(v reflect.Value) int {
	removed := 0
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return 0
		}
		if v.Elem().Kind() == reflect.Struct && p.isHidden(v.Elem()) {
			v.Set(reflect.Zero(v.Type()))
			return 1
		}
		return p.prune(v.Elem())
	case reflect.Slice:
		if v.Len() == 0 || v.Type().Elem().Kind() != reflect.Struct {
			return 0
		}
		out := reflect.MakeSlice(v.Type(), 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			el := v.Index(i)
			if p.isHidden(el) {
				removed++
				continue
			}
			removed += p.prune(el)
			out = reflect.Append(out, el)
		}
		if out.Len() == 0 {
			out = reflect.Zero(v.Type())
		}
		v.Set(out)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				removed += p.prune(v.Field(i))
			}
		}
	}
	return removed
}

// pluralLen returns the number of entries of a plural annotation, or -1
// for other annotations.
func pluralLen(v reflect.Value) int {
	f := v.FieldByName("Value")
	if !f.IsValid() || f.Kind() != reflect.Slice {
		return -1
	}
	return f.Len()
}

func coveredBy(s decl.Scope, hidden []decl.Scope) bool {
	for _, h := range hidden {
		if h.Contains(s) {
			return true
		}
	}
	return false
}

func qualifiedType(s decl.Scope) string {
	if s.Package == "" {
		return s.Type
	}
	return s.Package + "." + s.Type
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

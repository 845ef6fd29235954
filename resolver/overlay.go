package resolver

import (
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/internal/maputil"
	"github.com/erraggy/oasresolve/oaserrors"
)

var extensionsType = reflect.TypeOf([]decl.Extension(nil))

// positionalFields are struct lists whose order carries meaning. They are
// replaced wholesale instead of merged by key.
var positionalFields = map[string]bool{
	"OneOf":    true,
	"AnyOf":    true,
	"AllOf":    true,
	"Security": true,
}

// poisonSet records extension keys that collided at one precedence level:
// path -> key -> declaring sources.
type poisonSet map[string]map[string][]string

func (ps poisonSet) add(path, key string, sources ...string) {
	if ps[path] == nil {
		ps[path] = make(map[string][]string)
	}
	for _, s := range sources {
		if !slices.Contains(ps[path][key], s) {
			ps[path][key] = append(ps[path][key], s)
		}
	}
}

func (ps poisonSet) has(path, key string) bool {
	_, ok := ps[path][key]
	return ok
}

// errors returns one DuplicateExtensionKeyError per poisoned key, sorted by
// path and key. prefix names the owner of the paths (a scope or "document").
func (ps poisonSet) errors(prefix string) []error {
	var errs []error
	for _, path := range maputil.SortedKeys(ps) {
		for _, k := range maputil.SortedKeys(ps[path]) {
			sources := append([]string(nil), ps[path][k]...)
			sort.Strings(sources)
			at := prefix
			if path != "" {
				at += " " + path
			}
			errs = append(errs, &oaserrors.DuplicateExtensionKeyError{Path: at, Key: k, Sources: sources})
		}
	}
	return errs
}

// merger overlays annotation values field by field. Set fields of the
// source replace those of the destination; unset (nil) fields never do.
// Keyed lists merge element-wise by identity key, explicitly empty lists
// clear the destination, and extension lists merge by key.
//
// When same is true the merger combines contributions of one precedence
// level: an extension key contributed twice with different values is
// dropped and recorded in poison. Otherwise it overlays an inner level on
// an outer one, and poison holds the inner level's collisions, which are
// removed from the result.
type merger struct {
	same   bool
	poison poisonSet
}

func newSameLevelMerger() *merger {
	return &merger{same: true, poison: make(poisonSet)}
}

func newCrossLevelMerger(inner poisonSet) *merger {
	return &merger{poison: inner}
}

// overlay merges the struct src into the addressable struct dst.
func (m *merger) overlay(dst, src reflect.Value, path string) {
	t := src.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		sf, df := src.Field(i), dst.Field(i)
		fpath := joinPath(path, fieldName(f))
		switch sf.Kind() {
		case reflect.Pointer:
			if sf.IsNil() {
				continue
			}
			if sf.Elem().Kind() == reflect.Struct {
				if df.IsNil() {
					df.Set(reflect.New(sf.Type().Elem()))
				}
				m.overlay(df.Elem(), sf.Elem(), fpath)
				continue
			}
			df.Set(sf)
		case reflect.Slice:
			if sf.IsNil() {
				continue
			}
			switch {
			case f.Type == extensionsType:
				df.Set(reflect.ValueOf(m.mergeExtensions(df.Interface().([]decl.Extension), sf.Interface().([]decl.Extension), fpath)))
			case sf.Len() == 0:
				df.Set(reflect.MakeSlice(sf.Type(), 0, 0))
			case f.Type.Elem().Kind() != reflect.Struct:
				df.Set(sf)
			case positionalFields[f.Name] || !keyedTypes[f.Type.Elem()]:
				df.Set(m.copyList(sf, fpath))
			default:
				df.Set(m.mergeList(df, sf, fpath))
			}
		case reflect.String:
			if sf.String() != "" {
				df.SetString(sf.String())
			}
		}
	}
}

// copyList returns a fresh copy of a list, element by element.
func (m *merger) copyList(src reflect.Value, path string) reflect.Value {
	out := reflect.MakeSlice(src.Type(), 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		el := reflect.New(src.Type().Elem()).Elem()
		m.overlay(el, src.Index(i), indexPath(path, i))
		out = reflect.Append(out, el)
	}
	return out
}

// mergeList merges src into dst by identity key. Elements without a key
// are appended.
func (m *merger) mergeList(dst, src reflect.Value, path string) reflect.Value {
	out := reflect.MakeSlice(src.Type(), 0, dst.Len()+src.Len())
	for i := 0; i < dst.Len(); i++ {
		out = reflect.Append(out, dst.Index(i))
	}
	for i := 0; i < src.Len(); i++ {
		el := src.Index(i)
		key, ok := keyOf(el)
		epath := keyPath(path, key)
		if ok {
			if j := indexByKey(out, key); j >= 0 {
				m.overlay(out.Index(j), el, epath)
				continue
			}
		} else {
			epath = indexPath(path, out.Len())
		}
		nv := reflect.New(src.Type().Elem()).Elem()
		m.overlay(nv, el, epath)
		out = reflect.Append(out, nv)
	}
	return out
}

func (m *merger) mergeExtensions(dst, src []decl.Extension, path string) []decl.Extension {
	out := append([]decl.Extension(nil), dst...)
	for _, e := range src {
		key := extensionKey(e)
		i := slices.IndexFunc(out, func(x decl.Extension) bool { return extensionKey(x) == key })
		if !m.same {
			if i >= 0 {
				out[i] = e
			} else {
				out = append(out, e)
			}
			continue
		}
		switch {
		case m.poison.has(path, key):
			m.poison.add(path, key, e.Source)
		case i >= 0 && sameExtension(out[i], e):
		case i >= 0:
			m.poison.add(path, key, out[i].Source, e.Source)
			out = slices.Delete(out, i, i+1)
		default:
			out = append(out, e)
		}
	}
	if !m.same {
		for key := range m.poison[path] {
			out = slices.DeleteFunc(out, func(x decl.Extension) bool { return extensionKey(x) == key })
		}
	}
	if out == nil {
		out = []decl.Extension{}
	}
	return out
}

func extensionKey(e decl.Extension) string {
	if e.Name == nil {
		return ""
	}
	return *e.Name
}

func sameExtension(a, b decl.Extension) bool {
	return deref(a.Value) == deref(b.Value) && isTrue(a.ParseValue) == isTrue(b.ParseValue)
}

// keyedTypes are the list element types merged by identity key.
var keyedTypes = map[reflect.Type]bool{
	reflect.TypeOf(decl.Tag{}):                  true,
	reflect.TypeOf(decl.Server{}):               true,
	reflect.TypeOf(decl.ServerVariable{}):       true,
	reflect.TypeOf(decl.Schema{}):               true,
	reflect.TypeOf(decl.Content{}):              true,
	reflect.TypeOf(decl.Encoding{}):             true,
	reflect.TypeOf(decl.Header{}):               true,
	reflect.TypeOf(decl.ExampleObject{}):        true,
	reflect.TypeOf(decl.Parameter{}):            true,
	reflect.TypeOf(decl.APIResponse{}):          true,
	reflect.TypeOf(decl.Link{}):                 true,
	reflect.TypeOf(decl.LinkParameter{}):        true,
	reflect.TypeOf(decl.Callback{}):             true,
	reflect.TypeOf(decl.CallbackOperation{}):    true,
	reflect.TypeOf(decl.SecurityScheme{}):       true,
	reflect.TypeOf(decl.OAuthScope{}):           true,
	reflect.TypeOf(decl.DiscriminatorMapping{}): true,
}

// keyOf returns the identity key of a list element. It returns false for
// elements that carry no identity (an unnamed property, for instance).
func keyOf(v reflect.Value) (string, bool) {
	switch e := v.Addr().Interface().(type) {
	case *decl.Tag:
		return firstSet(e.Name, e.Ref)
	case *decl.Server:
		return firstSet(e.URL)
	case *decl.ServerVariable:
		return firstSet(e.Name)
	case *decl.Schema:
		return firstSet(e.Name)
	case *decl.Content:
		return deref(e.MediaType), true
	case *decl.Encoding:
		return firstSet(e.Name)
	case *decl.Header:
		return firstSet(e.Name, e.Ref)
	case *decl.ExampleObject:
		return firstSet(e.Name, e.Ref)
	case *decl.Parameter:
		return parameterKey(e), true
	case *decl.APIResponse:
		return responseCode(e), true
	case *decl.Link:
		return firstSet(e.Name, e.Ref)
	case *decl.LinkParameter:
		return firstSet(e.Name)
	case *decl.Callback:
		return firstSet(e.Name, e.Ref)
	case *decl.CallbackOperation:
		if e.Method == nil {
			return "", false
		}
		return strings.ToLower(*e.Method), true
	case *decl.SecurityScheme:
		return firstSet(e.SecuritySchemeName, e.Ref)
	case *decl.OAuthScope:
		return firstSet(e.Name)
	case *decl.DiscriminatorMapping:
		return firstSet(e.Value)
	}
	return "", false
}

// parameterKey identifies a parameter by location and name, or by ref when
// it has no name.
func parameterKey(p *decl.Parameter) string {
	if p.Name == nil && p.Ref != nil {
		return "$ref:" + *p.Ref
	}
	return deref(p.In) + ":" + deref(p.Name)
}

// responseCode returns the response code, "default" when unset.
func responseCode(r *decl.APIResponse) string {
	if r.ResponseCode == nil {
		return "default"
	}
	return *r.ResponseCode
}

func indexByKey(list reflect.Value, key string) int {
	for i := 0; i < list.Len(); i++ {
		if k, ok := keyOf(list.Index(i)); ok && k == key {
			return i
		}
	}
	return -1
}

func firstSet(ptrs ...*string) (string, bool) {
	for _, p := range ptrs {
		if p != nil {
			return *p, true
		}
	}
	return "", false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("yaml"); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return lowerFirst(f.Name)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func keyPath(path, key string) string {
	return path + "[" + key + "]"
}

func indexPath(path string, i int) string {
	return path + "[#" + strconv.Itoa(i) + "]"
}

package decl

import (
	"reflect"
	"strings"
)

// sentinelDefault is the enum value meaning "not specified".
const sentinelDefault = "DEFAULT"

var extensionType = reflect.TypeOf(Extension{})

// Normalize returns a copy of d whose annotation has every default sentinel
// turned into "unset": empty strings become nil, enum fields holding
// "DEFAULT" become nil, and every Extension is stamped with d's location.
// The input declaration is never modified.
func Normalize(d Declaration) Declaration {
	if d.Annotation == nil {
		return d
	}
	cp := cloneValue(reflect.ValueOf(d.Annotation))
	normalizeValue(cp, d.Location(), false)
	d.Annotation = cp.Interface().(Annotation)
	return d
}

// Clone returns a deep copy of a.
func Clone(a Annotation) Annotation {
	if a == nil {
		return nil
	}
	return cloneValue(reflect.ValueOf(a)).Interface().(Annotation)
}

func normalizeValue(v reflect.Value, source string, isEnum bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		if v.Elem().Kind() == reflect.String {
			s := strings.TrimSpace(v.Elem().String())
			if s == "" || (isEnum && strings.EqualFold(s, sentinelDefault)) {
				v.Set(reflect.Zero(v.Type()))
			}
			return
		}
		normalizeValue(v.Elem(), source, false)
	case reflect.Struct:
		if v.Type() == extensionType {
			v.FieldByName("Source").SetString(source)
		}
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			normalizeValue(v.Field(i), source, t.Field(i).Tag.Get("oas") == "enum")
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.String {
			// Entries of string lists are values, not sentinels; drop only blanks.
			if v.IsNil() {
				return
			}
			out := reflect.MakeSlice(v.Type(), 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				if strings.TrimSpace(v.Index(i).String()) != "" {
					out = reflect.Append(out, v.Index(i))
				}
			}
			v.Set(out)
			return
		}
		for i := 0; i < v.Len(); i++ {
			normalizeValue(v.Index(i), source, false)
		}
	}
}

func cloneValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		cp := reflect.New(v.Type().Elem())
		cp.Elem().Set(cloneValue(v.Elem()))
		return cp
	case reflect.Struct:
		cp := reflect.New(v.Type()).Elem()
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			cp.Field(i).Set(cloneValue(v.Field(i)))
		}
		return cp
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			cp.Index(i).Set(cloneValue(v.Index(i)))
		}
		return cp
	default:
		return v
	}
}

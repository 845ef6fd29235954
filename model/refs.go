package model

import "strings"

// componentsPrefix is the JSON pointer prefix of local component refs.
const componentsPrefix = "#/components/"

// ComponentRef builds "#/components/<kind>/<name>".
func ComponentRef(kind, name string) string {
	return componentsPrefix + kind + "/" + escapePointer(name)
}

// ExpandRef turns a short component name into a local component ref.
// Anything that already looks like a pointer or URI is returned unchanged.
// Tag refs stay bare names since tags have no components section.
func ExpandRef(kind, ref string) string {
	if ref == "" || kind == KindTags {
		return ref
	}
	if strings.ContainsAny(ref, "#/") || strings.Contains(ref, ":") {
		return ref
	}
	return ComponentRef(kind, ref)
}

// ParseComponentRef splits a local component ref into kind and name.
// ok is false for external refs and pointers outside #/components.
func ParseComponentRef(ref string) (kind, name string, ok bool) {
	if !strings.HasPrefix(ref, componentsPrefix) {
		return "", "", false
	}
	rest := ref[len(componentsPrefix):]
	i := strings.IndexByte(rest, '/')
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	kind, name = rest[:i], unescapePointer(rest[i+1:])
	if strings.Contains(rest[i+1:], "/") || !ValidKind(kind) {
		return "", "", false
	}
	return kind, name, true
}

// IsLocalRef reports whether ref points into this document.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, "#")
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

func unescapePointer(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}

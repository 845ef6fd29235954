package model

// Parameter locations
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed in a cookie
	ParamInCookie = "cookie"
)

// Parameter and encoding styles
const (
	StyleForm           = "form"
	StyleSpaceDelimited = "spaceDelimited"
	StylePipeDelimited  = "pipeDelimited"
	StyleDeepObject     = "deepObject"
	StyleMatrix         = "matrix"
	StyleLabel          = "label"
	StyleSimple         = "simple"
)

// Schema types
const (
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeString  = "string"
	TypeObject  = "object"
	TypeArray   = "array"
	TypeNull    = "null"
)

// Security scheme types
const (
	SchemeTypeAPIKey        = "apiKey"
	SchemeTypeHTTP          = "http"
	SchemeTypeOAuth2        = "oauth2"
	SchemeTypeOpenIDConnect = "openIdConnect"
	SchemeTypeMutualTLS     = "mutualTLS"
)

// HTTP methods
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the HTTP methods in the order PathItem fields are declared.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// Component kinds, as they appear in "#/components/<kind>/<name>".
// KindTags has no components section; tags live on the document.
const (
	KindSchemas         = "schemas"
	KindResponses       = "responses"
	KindParameters      = "parameters"
	KindExamples        = "examples"
	KindRequestBodies   = "requestBodies"
	KindHeaders         = "headers"
	KindSecuritySchemes = "securitySchemes"
	KindLinks           = "links"
	KindCallbacks       = "callbacks"
	KindTags            = "tags"
)

// DefaultServerURL is used when a document declares no servers.
const DefaultServerURL = "/"

// DefaultMediaType is used for content declared without a media type.
const DefaultMediaType = "*/*"

// ValidParamIn reports whether in is a known parameter location.
func ValidParamIn(in string) bool {
	switch in {
	case ParamInQuery, ParamInHeader, ParamInPath, ParamInCookie:
		return true
	}
	return false
}

// ValidStyle reports whether style is a known parameter or encoding style.
func ValidStyle(style string) bool {
	switch style {
	case StyleForm, StyleSpaceDelimited, StylePipeDelimited, StyleDeepObject,
		StyleMatrix, StyleLabel, StyleSimple:
		return true
	}
	return false
}

// ValidSchemaType reports whether t is a known schema type.
func ValidSchemaType(t string) bool {
	switch t {
	case TypeInteger, TypeNumber, TypeBoolean, TypeString, TypeObject, TypeArray, TypeNull:
		return true
	}
	return false
}

// ValidSecuritySchemeType reports whether t is a known security scheme type.
func ValidSecuritySchemeType(t string) bool {
	switch t {
	case SchemeTypeAPIKey, SchemeTypeHTTP, SchemeTypeOAuth2, SchemeTypeOpenIDConnect, SchemeTypeMutualTLS:
		return true
	}
	return false
}

// ValidAPIKeyIn reports whether in is a location an apiKey scheme may use.
func ValidAPIKeyIn(in string) bool {
	switch in {
	case ParamInQuery, ParamInHeader, ParamInCookie:
		return true
	}
	return false
}

// ValidMethod reports whether m is a lower-case HTTP method known to PathItem.
func ValidMethod(m string) bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// ValidKind reports whether kind names a component registry.
func ValidKind(kind string) bool {
	switch kind {
	case KindSchemas, KindResponses, KindParameters, KindExamples, KindRequestBodies,
		KindHeaders, KindSecuritySchemes, KindLinks, KindCallbacks, KindTags:
		return true
	}
	return false
}

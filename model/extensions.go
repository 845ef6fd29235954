package model

import (
	"fmt"
	"strings"
)

// ExtensionPrefix starts every specification extension key.
const ExtensionPrefix = "x-"

// reservedPrefixes are kept for future use by the OpenAPI Initiative.
var reservedPrefixes = []string{"x-oai-", "x-oas-"}

// builtinFields lists the fixed field names of each extensible object.
var builtinFields = map[string][]string{
	"document":       {"openapi", "info", "jsonSchemaDialect", "servers", "paths", "webhooks", "components", "security", "tags", "externalDocs"},
	"info":           {"title", "summary", "description", "termsOfService", "contact", "license", "version"},
	"contact":        {"name", "url", "email"},
	"license":        {"name", "identifier", "url"},
	"server":         {"url", "description", "variables"},
	"tag":            {"name", "description", "externalDocs"},
	"externalDocs":   {"description", "url"},
	"components":     {"schemas", "responses", "parameters", "examples", "requestBodies", "headers", "securitySchemes", "links", "callbacks", "pathItems"},
	"schema":         {"$ref", "type", "format", "title", "description", "default", "example", "enum", "properties", "items", "required", "nullable", "readOnly", "writeOnly", "oneOf", "anyOf", "allOf", "not", "discriminator", "deprecated", "externalDocs"},
	"parameter":      {"$ref", "name", "in", "description", "required", "deprecated", "allowEmptyValue", "style", "explode", "allowReserved", "schema", "example", "examples", "content"},
	"header":         {"$ref", "description", "required", "deprecated", "allowEmptyValue", "style", "explode", "schema", "example", "examples", "content"},
	"requestBody":    {"$ref", "description", "content", "required"},
	"mediaType":      {"schema", "example", "examples", "encoding"},
	"encoding":       {"contentType", "headers", "style", "explode", "allowReserved"},
	"example":        {"$ref", "summary", "description", "value", "externalValue"},
	"response":       {"$ref", "description", "headers", "content", "links"},
	"link":           {"$ref", "operationRef", "operationId", "parameters", "requestBody", "description", "server"},
	"operation":      {"tags", "summary", "description", "externalDocs", "operationId", "parameters", "requestBody", "responses", "callbacks", "deprecated", "security", "servers"},
	"callback":       {"$ref"},
	"securityScheme": {"$ref", "type", "description", "name", "in", "scheme", "bearerFormat", "flows", "openIdConnectUrl"},
	"oauthFlows":     {"implicit", "password", "clientCredentials", "authorizationCode"},
	"oauthFlow":      {"authorizationUrl", "tokenUrl", "refreshUrl", "scopes"},
}

// ValidateExtensionKey checks key as an extension of the given owner object
// ("tag", "operation", ...). It returns a human-readable reason, or "" when
// the key is acceptable.
func ValidateExtensionKey(owner, key string) string {
	for _, f := range builtinFields[owner] {
		if key == f {
			return fmt.Sprintf("collides with built-in %s field %q", owner, f)
		}
	}
	if !strings.HasPrefix(key, ExtensionPrefix) {
		return fmt.Sprintf("must start with %q", ExtensionPrefix)
	}
	if len(key) == len(ExtensionPrefix) {
		return "empty extension name"
	}
	lower := strings.ToLower(key)
	for _, p := range reservedPrefixes {
		if strings.HasPrefix(lower, p) {
			return fmt.Sprintf("prefix %q is reserved", p)
		}
	}
	return ""
}

// Package model defines the in-memory OpenAPI 3.x object graph produced by
// the resolver.
//
// The types mirror the OpenAPI object model: [Document], [Info], [Server],
// [Tag], [ExternalDocs], [Components], [Schema], [Parameter], [RequestBody],
// [MediaType], [Encoding], [Header], [Example], [Response], [Link],
// [Operation], [PathItem], [Callback], [SecurityScheme] and
// [SecurityRequirement]. Every extensible object carries its "x-" keys in
// an Extra map.
//
// Lists keep insertion order (declaration order of their first contributor).
// Maps such as Components registries and response codes are unordered, as
// OpenAPI itself treats them.
//
// Security uses the nil versus empty distinction: a nil Operation.Security
// inherits the document requirements, while a non-nil empty slice removes
// security for that operation.
//
// # References
//
// Component refs use the "#/components/<kind>/<name>" form. [ExpandRef]
// turns a short name into that form and [ParseComponentRef] reverses it.
// Tags are referenced by bare name.
//
// # Extensions
//
// [ValidateExtensionKey] enforces the "x-" prefix, rejects the reserved
// "x-oai-" and "x-oas-" prefixes, and rejects keys that shadow a fixed
// field of the owning object.
package model

// Package naming builds component schema names and converts identifier
// case for the resolver and the source scanner.
//
// A [Namer] applies a [Strategy] (or a text/template) to the package and
// type that declared a schema. Templates can use the case helpers exposed
// by [TemplateFuncs]:
//
//	n, err := naming.NewNamer(naming.TypeOnly).WithTemplate("{{pascal .Package}}_{{.Type}}")
//	name := n.Name(naming.Context{Package: "airlines", Type: "User"}) // "Airlines_User"
//
// As an internal package, its API may change without notice.
package naming

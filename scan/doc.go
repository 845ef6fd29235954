// Package scan discovers declaration records in Go source code.
//
// Declarations are written as directive comments in the doc comment of a
// package clause, a type, a method or a function:
//
//	//oas:openAPIDefinition {info: {title: Airlines, version: "1.0"}}
//	package airlines
//
//	//oas:endpoint {path: /user, produces: [application/json]}
//	//oas:apiResponse {responseCode: "404", description: User not found}
//	type UserResource struct{}
//
//	//oas:endpoint {method: get, path: "/{username}"}
//	//oas:parameter(username) {in: path}
//	//oas:schema(username) {type: string}
//	func (r *UserResource) GetUserByName(ctx context.Context, username string) (*User, error)
//
// A directive is "//oas:" immediately followed by an annotation kind (see
// decl.Kinds), an optional argument name in parentheses and an optional
// YAML value on the rest of the line. A value may continue on following
// lines that start with "//oas:+". A directive without a value declares
// an annotation with every field unset, which for plural kinds means
// "explicitly empty":
//
//	//oas:tags
//
// The declaring Go construct determines the scope: the package clause gives
// a package scope, a type gives a type scope, a method gives a method scope
// under its receiver type and a function without a receiver gives a method
// scope with no type. An argument name selects one of the function's
// parameters.
//
// Records are numbered in source order (packages by import path, files by
// name, directives by position), so the same tree always yields the same
// Seq values. Sources are "file:line" relative to the scanned directory.
package scan

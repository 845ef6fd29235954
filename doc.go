// Package oasresolve resolves OpenAPI annotation declarations into an
// OpenAPI document.
//
// Code that describes an HTTP API declares annotation records (schemas,
// parameters, responses, tags, security requirements, extensions) at four
// nested scopes: package, type, method and method argument. The resolver
// combines them into a single document following a fixed set of rules.
//
// # Overview
//
// The module is organized into packages:
//
//   - decl: the declaration record model, its scopes and the declaration
//     file format (YAML or JSON)
//   - model: the OpenAPI document produced by a resolution
//   - resolver: the pipeline that turns a set of declarations into a document
//   - scan: collects declarations from //oas: directive comments in Go packages
//   - oaserrors: the typed errors reported by every stage
//
// # Resolution
//
// A resolution runs five phases in order: collect, hidden, merge, refs and
// freeze. Collect groups records by scope and checks that each kind is
// declared where it is allowed. Hidden removes elements marked hidden. Merge
// builds each operation by layering method, type and package declarations,
// the nearest scope winning. Refs rewrites short references to component
// pointers and records those that cannot be found. Freeze assembles and
// sorts the document.
//
// The result is a function of the declaration set alone: input order does
// not matter and resolving the same set twice yields equal documents.
//
// Example:
//
//	set, err := decl.LoadFile("declarations.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := resolver.Resolve(set, resolver.WithOpenAPIVersion("3.0.3"))
//	if err != nil {
//		// A duplicate definition aborts the whole build.
//		log.Fatal(err)
//	}
//
//	for _, op := range res.Document.Operations() {
//		fmt.Printf("%s %s\n", op.Method, op.Path)
//	}
//
// # Error Handling
//
// Errors fall into three groups. A DuplicateDefinitionError is global:
// Resolve returns it and no document is built. Element-local errors, such as
// a ConflictingFieldError or a DuplicateExtensionKeyError, drop the element
// and are listed in Result.Errors. An UnresolvedReferenceError is
// informational; the reference is kept and listed in Result.Unresolved.
//
// Every error type matches a sentinel with errors.Is:
//
//	if errors.Is(err, oaserrors.ErrDuplicateDefinition) {
//		// two scopes define the same component
//	}
//
// # Directives
//
// The scan package reads declarations from comments:
//
//	//oas:endpoint {path: /users}
//	type UserResource struct{}
//
//	//oas:endpoint {method: get, path: "/{username}"}
//	//oas:apiResponse {responseCode: "200", content: [{schema: {implementation: User}}]}
//	//oas:parameter(username) {in: path, schema: {type: string}}
//	func (r *UserResource) GetUserByName(username string) (*User, error)
//
// An empty directive such as "//oas:tags" declares an explicit empty list,
// which stops inheritance from the enclosing scopes.
//
// # Command-Line Interface
//
//	# Resolve a declaration file
//	oasresolve check declarations.yaml
//
//	# Scan Go packages for directives
//	oasresolve scan ./...
//
//	# Run the MCP server over stdio
//	oasresolve mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasresolve/cmd/oasresolve@latest
package oasresolve

// Package resolver turns declaration records into a single frozen OpenAPI
// document.
//
// # Phases
//
// A resolution runs five phases in order, each exactly once:
//
//  1. collect: default sentinels become unset, enumeration values are
//     checked and canonicalized, records are ordered by Seq.
//  2. hidden: hidden operations, arguments and nested elements are removed
//     before anything else looks at them.
//  3. merge: for each operation, package, type and method (with its
//     arguments) contributions are overlaid field by field, inner levels
//     winning. Keyed lists (tags, parameters, responses, servers, callbacks,
//     extensions) merge by identity key.
//  4. refs: registry declarations (tags, component entries, security
//     schemes, type schemas) are reconciled by kind and name, and every
//     reference is checked against them.
//  5. freeze: defaults are filled, operationIds are made unique, and the
//     document is deep-copied away from all builder state.
//
// # Errors
//
// A DuplicateDefinitionError aborts the build: Resolve returns a nil Result
// and an oaserrors.Errors batch with every global error found. All other
// errors are element-local: the offending element (or extension key) is
// left out of the document and the error is reported in Result.Errors.
// References without a local definition are carried through as $ref
// placeholders and listed in Result.Unresolved.
//
// # Example
//
//	r, err := resolver.New(resolver.WithDefaultInfo("Airlines", "1.0"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := r.Resolve(set)
//	if err != nil {
//		log.Fatal(err) // duplicate definitions
//	}
//	for _, e := range res.Errors {
//		log.Println(e)
//	}
//	doc := res.Document
package resolver

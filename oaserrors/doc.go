// Package oaserrors provides structured error types for the oasresolve library.
//
// Import path: github.com/erraggy/oasresolve/oaserrors
//
// # Error Classes
//
// Resolution distinguishes three classes of failure:
//
//   - Global: [DuplicateDefinitionError]. A component registry entry has more than
//     one complete declaration. Every element referencing it would be silently
//     wrong, so the whole build is aborted and all such errors are returned
//     together as [Errors].
//   - Element-local: [ConflictingFieldError], [DuplicateExtensionKeyError],
//     [InvalidExtensionKeyError], [DuplicateOperationIDError] and
//     [InvalidDeclarationError]. The offending element (or extension key) is
//     dropped and the build continues.
//   - Informational: [UnresolvedReferenceError]. The ref is kept in the output.
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrDuplicateDefinition]: Matches any [DuplicateDefinitionError]
//   - [ErrUnresolvedReference]: Matches any [UnresolvedReferenceError]
//   - [ErrConflictingField]: Matches any [ConflictingFieldError]
//   - [ErrDuplicateExtensionKey]: Matches any [DuplicateExtensionKeyError]
//   - [ErrInvalidExtensionKey]: Matches any [InvalidExtensionKeyError]
//   - [ErrDuplicateOperationID]: Matches any [DuplicateOperationIDError]
//   - [ErrInvalidDeclaration]: Matches any [InvalidDeclarationError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Batches
//
// [Errors] implements Unwrap() []error, so errors.Is and errors.As see through
// a batch:
//
//	_, err := r.Resolve(decls)
//	var dup *oaserrors.DuplicateDefinitionError
//	if errors.As(err, &dup) {
//	    fmt.Printf("%s %q declared at %v\n", dup.Kind, dup.Name, dup.Sources)
//	}
package oaserrors

package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDuplicateDefinition indicates two complete declarations of one named entity.
	ErrDuplicateDefinition = errors.New("duplicate definition")

	// ErrUnresolvedReference indicates a ref with no local match.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrConflictingField indicates mutually exclusive fields were both set.
	ErrConflictingField = errors.New("conflicting field")

	// ErrDuplicateExtensionKey indicates an extension key collision at one precedence level.
	ErrDuplicateExtensionKey = errors.New("duplicate extension key")

	// ErrInvalidExtensionKey indicates an extension key that is not allowed.
	ErrInvalidExtensionKey = errors.New("invalid extension key")

	// ErrDuplicateOperationID indicates an operationId used by more than one operation.
	ErrDuplicateOperationID = errors.New("duplicate operationId")

	// ErrInvalidDeclaration indicates a declaration record that cannot be applied.
	ErrInvalidDeclaration = errors.New("invalid declaration")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// DuplicateDefinitionError reports more than one complete declaration of the
// same component kind and name. It is document-global: the build is aborted.
type DuplicateDefinitionError struct {
	// Kind is the component kind (e.g. "tags", "schemas", "securitySchemes")
	Kind string
	// Name is the shared reference name
	Name string
	// Sources lists every conflicting declaration location, sorted
	Sources []string
}

// Error returns a human-readable error message.
func (e *DuplicateDefinitionError) Error() string {
	msg := "duplicate definition"
	if e.Kind != "" {
		msg += " of " + e.Kind
	}
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if len(e.Sources) > 0 {
		msg += " in " + strings.Join(e.Sources, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DuplicateDefinitionError) Is(target error) bool {
	return target == ErrDuplicateDefinition
}

// UnresolvedReferenceError reports a ref that has no matching complete
// declaration. The ref is carried into the document as-is.
type UnresolvedReferenceError struct {
	// Kind is the component kind the ref points into
	Kind string
	// Ref is the reference as written in the output document
	Ref string
	// Source is the location of the referencing declaration
	Source string
	// External is true when the ref points outside the local components
	External bool
}

// Error returns a human-readable error message.
func (e *UnresolvedReferenceError) Error() string {
	msg := "unresolved reference"
	if e.External {
		msg = "external reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Source != "" {
		msg += " (from " + e.Source + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

// ConflictingFieldError reports an element that declares mutually exclusive
// forms. The element is omitted from the document.
type ConflictingFieldError struct {
	// Element is the element type (e.g. "parameter")
	Element string
	// Name is the element's identity name
	Name string
	// In is the parameter location, when the element is a parameter
	In string
	// Path locates the owning object (e.g. "GET /users/{id}")
	Path string
	// Fields are the conflicting field names
	Fields []string
	// Source is the declaration location
	Source string
}

// Error returns a human-readable error message.
func (e *ConflictingFieldError) Error() string {
	msg := "conflicting field"
	if e.Element != "" {
		msg += " in " + e.Element
	}
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.In != "" {
		msg += " (in: " + e.In + ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if len(e.Fields) > 0 {
		msg += ": " + strings.Join(e.Fields, " and ") + " are mutually exclusive"
	}
	if e.Source != "" {
		msg += " [" + e.Source + "]"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConflictingFieldError) Is(target error) bool {
	return target == ErrConflictingField
}

// DuplicateExtensionKeyError reports one extension key contributed with
// different values by two declarations at the same precedence level.
// The key is dropped; the owning element is kept.
type DuplicateExtensionKeyError struct {
	// Path locates the extension list: the owning scope, then the field
	// path inside it, e.g. "shop.Orders.list extensions"
	Path string
	// Key is the colliding extension key
	Key string
	// Sources are the colliding declaration locations
	Sources []string
}

// Error returns a human-readable error message.
func (e *DuplicateExtensionKeyError) Error() string {
	msg := "duplicate extension key"
	if e.Key != "" {
		msg += " " + e.Key
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if len(e.Sources) > 0 {
		msg += " in " + strings.Join(e.Sources, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DuplicateExtensionKeyError) Is(target error) bool {
	return target == ErrDuplicateExtensionKey
}

// InvalidExtensionKeyError reports an extension key that lacks the "x-"
// prefix, uses a reserved prefix, or shadows a built-in field.
type InvalidExtensionKeyError struct {
	// Path locates the owning object
	Path string
	// Key is the rejected key
	Key string
	// Reason describes why the key was rejected
	Reason string
	// Source is the declaration location
	Source string
}

// Error returns a human-readable error message.
func (e *InvalidExtensionKeyError) Error() string {
	msg := "invalid extension key"
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Source != "" {
		msg += " [" + e.Source + "]"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidExtensionKeyError) Is(target error) bool {
	return target == ErrInvalidExtensionKey
}

// DuplicateOperationIDError reports an operationId already used by another
// operation. The later operation is omitted from the document.
type DuplicateOperationIDError struct {
	OperationID string
	Method      string
	Path        string
	// First is the "METHOD /path" of the operation that kept the id
	First string
	// Source is the declaration location of the dropped operation
	Source string
}

// Error returns a human-readable error message.
func (e *DuplicateOperationIDError) Error() string {
	msg := fmt.Sprintf("duplicate operationId %q", e.OperationID)
	if e.Method != "" && e.Path != "" {
		msg += fmt.Sprintf(" at %s %s", e.Method, e.Path)
	}
	if e.First != "" {
		msg += " (first defined at " + e.First + ")"
	}
	if e.Source != "" {
		msg += " [" + e.Source + "]"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DuplicateOperationIDError) Is(target error) bool {
	return target == ErrDuplicateOperationID
}

// InvalidDeclarationError reports a declaration record whose values cannot be
// mapped onto the document model (unknown enum values, missing identity keys).
type InvalidDeclarationError struct {
	// Kind is the annotation kind
	Kind string
	// Field is the offending field
	Field string
	// Value is the offending value (may be nil)
	Value any
	// Message describes the problem
	Message string
	// Source is the declaration location
	Source string
}

// Error returns a human-readable error message.
func (e *InvalidDeclarationError) Error() string {
	msg := "invalid declaration"
	if e.Kind != "" {
		msg += " " + e.Kind
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Source != "" {
		msg += " [" + e.Source + "]"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidDeclarationError) Is(target error) bool {
	return target == ErrInvalidDeclaration
}

// ParseError represents a failure to decode declaration input.
// This includes YAML/JSON deserialization errors and malformed directives.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Errors is a batch of errors returned together.
// A nil or empty batch is never returned as a non-nil error.
type Errors []error

// Error implements the error interface with a formatted multi-error message.
func (errs Errors) Error() string {
	live := errs.Unwrap()
	switch len(live) {
	case 0:
		return ""
	case 1:
		return live[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):\n", len(live))
	for _, e := range live {
		sb.WriteString("  - ")
		sb.WriteString(e.Error())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the errors for Go 1.20+ error wrapping semantics,
// enabling errors.Is and errors.As to work with multiple wrapped errors.
func (errs Errors) Unwrap() []error {
	result := make([]error, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		result = append(result, e)
	}
	return result
}

// ErrOrNil returns errs as an error, or nil when it holds no errors.
func (errs Errors) ErrOrNil() error {
	if len(errs.Unwrap()) == 0 {
		return nil
	}
	return errs
}

// IsGlobal reports whether err aborts the whole document build.
func IsGlobal(err error) bool {
	return errors.Is(err, ErrDuplicateDefinition)
}

// IsInformational reports whether err is a diagnostic that does not drop anything.
func IsInformational(err error) bool {
	return errors.Is(err, ErrUnresolvedReference)
}

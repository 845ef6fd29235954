package resolver

import (
	"errors"
	"fmt"

	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/oaserrors"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnIgnoredDeclaration indicates a declaration whose kind has no meaning
	// at its scope (e.g. a schema on a method).
	WarnIgnoredDeclaration WarningCategory = "ignored_declaration"
	// WarnMissingEndpoint indicates a method scope with declarations but no
	// endpoint, so no operation was built for it.
	WarnMissingEndpoint WarningCategory = "missing_endpoint"
	// WarnHidden indicates an element removed because it was hidden.
	WarnHidden WarningCategory = "hidden"
	// WarnDefaultApplied indicates a default value was filled in.
	WarnDefaultApplied WarningCategory = "default_applied"
	// WarnExtensionValue indicates an extension value that could not be parsed
	// and was kept as a string.
	WarnExtensionValue WarningCategory = "extension_value"
	// WarnDeduplicated indicates equal complete declarations were collapsed.
	WarnDeduplicated WarningCategory = "deduplicated"
)

// Warning is a non-fatal note produced while resolving. Warnings never
// change the document; they explain choices the resolver made.
type Warning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Path locates the affected element (scope or "METHOD /path").
	Path string
	// Message is a human-readable description.
	Message string
	// Source is the declaration location that triggered the warning.
	Source string
	// Severity indicates warning severity (default: SeverityWarning).
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the formatted warning message.
func (w *Warning) String() string {
	if loc := w.Location(); loc != "" {
		return fmt.Sprintf("%s: %s", loc, w.Message)
	}
	return w.Message
}

// Location returns the source location, falling back to the element path.
func (w *Warning) Location() string {
	if w.Source != "" {
		return w.Source
	}
	return w.Path
}

func newIgnoredWarning(kind, scope, source, reason string) *Warning {
	return &Warning{
		Category: WarnIgnoredDeclaration,
		Path:     scope,
		Message:  fmt.Sprintf("%s declaration ignored: %s", kind, reason),
		Source:   source,
		Severity: severity.SeverityWarning,
		Context:  map[string]any{"kind": kind},
	}
}

func newMissingEndpointWarning(scope, source string) *Warning {
	return &Warning{
		Category: WarnMissingEndpoint,
		Path:     scope,
		Message:  fmt.Sprintf("method %s declares operation metadata but no endpoint", scope),
		Source:   source,
		Severity: severity.SeverityWarning,
	}
}

func newHiddenWarning(element, path, source string) *Warning {
	return &Warning{
		Category: WarnHidden,
		Path:     path,
		Message:  fmt.Sprintf("hidden %s removed", element),
		Source:   source,
		Severity: severity.SeverityInfo,
		Context:  map[string]any{"element": element},
	}
}

func newDefaultWarning(field, value string) *Warning {
	return &Warning{
		Category: WarnDefaultApplied,
		Path:     field,
		Message:  fmt.Sprintf("no %s declared, using %q", field, value),
		Severity: severity.SeverityInfo,
		Context:  map[string]any{"value": value},
	}
}

func newExtensionValueWarning(key, path, source string, err error) *Warning {
	return &Warning{
		Category: WarnExtensionValue,
		Path:     path,
		Message:  fmt.Sprintf("extension %s value kept as string: %v", key, err),
		Source:   source,
		Severity: severity.SeverityWarning,
		Context:  map[string]any{"key": key},
	}
}

func newDeduplicatedWarning(kind, name string, sources []string) *Warning {
	return &Warning{
		Category: WarnDeduplicated,
		Path:     kind + "." + name,
		Message:  fmt.Sprintf("%s %q declared identically %d times, collapsed", kind, name, len(sources)),
		Severity: severity.SeverityInfo,
		Context:  map[string]any{"sources": sources},
	}
}

// Classify returns the severity of a resolver error: global errors are
// SeverityError, informational ones SeverityInfo and element-local ones
// SeverityWarning.
func Classify(err error) severity.Severity {
	switch {
	case err == nil:
		return severity.SeverityInfo
	case oaserrors.IsGlobal(err):
		return severity.SeverityError
	case oaserrors.IsInformational(err):
		return severity.SeverityInfo
	case errors.Is(err, oaserrors.ErrParse), errors.Is(err, oaserrors.ErrConfig):
		return severity.SeverityError
	default:
		return severity.SeverityWarning
	}
}

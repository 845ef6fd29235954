// Package severity provides the severity levels attached to resolver
// warnings and used by the CLI to pick a failure threshold.
//
// Levels are ordered from least to most severe: Info < Warning < Error.
package severity

import (
	"fmt"
	"strings"
)

// Severity indicates how serious a resolver finding is.
type Severity int

const (
	// SeverityInfo marks a processing choice, such as a default that was applied.
	SeverityInfo Severity = iota

	// SeverityWarning marks a declaration that was ignored or an element that
	// was dropped without aborting the build.
	SeverityWarning

	// SeverityError marks a finding that aborts the build.
	SeverityError
)

// String returns the lowercase name of the level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is as severe as threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s >= threshold
}

// Parse maps "info", "warning" (or "warn") and "error" to a level.
func Parse(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", name)
	}
}

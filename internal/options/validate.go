// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"
)

// Source names one way of supplying an input and whether it was used.
type Source struct {
	Name string
	Set  bool
}

// ValidateSingleInputSource ensures exactly one of sources is set. The error
// names every source and how many were given.
func ValidateSingleInputSource(sources ...Source) error {
	count := 0
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.Set {
			count++
		}
		names = append(names, s.Name)
	}
	if count == 1 {
		return nil
	}
	return fmt.Errorf("exactly one of %s must be provided (got %d)", joinOr(names), count)
}

// joinOr renders names as "a", "a or b" or "a, b, or c".
func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}

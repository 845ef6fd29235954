// Package cliutil provides output helpers shared by the CLI commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer. A failed write is reported
// on stderr and otherwise ignored.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Heading writes title underlined with '=' followed by a blank line.
func Heading(w io.Writer, title string) {
	Writef(w, "%s\n%s\n\n", title, strings.Repeat("=", len([]rune(title))))
}

// Plural returns "1 operation" or "3 operations" style counts.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

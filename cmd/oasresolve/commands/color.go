package commands

import (
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// configureColor disables color when asked to or when NO_COLOR is set.
// Otherwise color's own terminal detection applies.
func configureColor(disabled bool) {
	if disabled || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

// severityLabel renders "[error]", "[warning]" or "[info]" in the level's color.
func severityLabel(level string) string {
	label := "[" + level + "]"
	switch level {
	case "error":
		return red(label)
	case "warning":
		return yellow(label)
	case "info":
		return cyan(label)
	}
	return label
}

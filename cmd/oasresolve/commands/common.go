// Package commands provides CLI command handlers for oasresolve.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasresolve/internal/cliutil"
	"github.com/erraggy/oasresolve/internal/naming"
	"github.com/erraggy/oasresolve/internal/report"
	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/resolver"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrFailed is returned when a resolution reports diagnostics at or above
// the --fail-on severity. The report has already been written.
var ErrFailed = errors.New("resolution failed")

// stdout receives reports. Tests replace it.
var stdout io.Writer = os.Stdout

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to w.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ResolveFlags are the resolver settings shared by check and scan.
type ResolveFlags struct {
	OpenAPIVersion string
	MediaType      string
	Naming         string
	NameTemplate   string
	Dedup          bool
	MinSeverity    string
	FailOn         string
	Format         string
	Quiet          bool
	Verbose        bool
	NoColor        bool
}

// bindResolveFlags registers the shared resolver flags on fs.
func bindResolveFlags(fs *flag.FlagSet, flags *ResolveFlags) {
	fs.StringVar(&flags.OpenAPIVersion, "openapi-version", resolver.DefaultOpenAPIVersion, "OpenAPI version written to the document")
	fs.StringVar(&flags.MediaType, "media-type", resolver.DefaultMediaType, "media type for content declared without one")
	fs.StringVar(&flags.Naming, "naming", "", "schema naming strategy for implementation refs: type, qualified, pascal, camel, snake, kebab")
	fs.StringVar(&flags.NameTemplate, "name-template", "", "Go template for schema names, e.g. '{{pascal .Package}}{{.Type}}'")
	fs.BoolVar(&flags.Dedup, "dedup", false, "collapse structurally equal definitions instead of failing")
	fs.StringVar(&flags.MinSeverity, "min-severity", "info", "hide warnings below this severity: info, warning, error")
	fs.StringVar(&flags.FailOn, "fail-on", "error", "exit non-zero when a diagnostic reaches this severity: info, warning, error")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only print the summary line")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only print the summary line")
	fs.BoolVar(&flags.Verbose, "v", false, "log resolver phases to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log resolver phases to stderr")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored text output (also honors NO_COLOR)")
}

// settings is the validated form of ResolveFlags.
type settings struct {
	opts      []resolver.Option
	threshold severity.Severity
	failOn    severity.Severity
	logger    resolver.Logger
}

// validate checks the flag values before any input is read.
func (f *ResolveFlags) validate() (*settings, error) {
	if err := ValidateOutputFormat(f.Format); err != nil {
		return nil, err
	}
	threshold, err := severity.Parse(f.MinSeverity)
	if err != nil {
		return nil, fmt.Errorf("invalid min-severity: %w", err)
	}
	failOn, err := severity.Parse(f.FailOn)
	if err != nil {
		return nil, fmt.Errorf("invalid fail-on: %w", err)
	}

	configureColor(f.NoColor)
	s := &settings{threshold: threshold, failOn: failOn, logger: resolver.NopLogger{}}
	if f.Verbose {
		s.logger = resolver.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	s.opts = []resolver.Option{
		resolver.WithOpenAPIVersion(f.OpenAPIVersion),
		resolver.WithDefaultMediaType(f.MediaType),
		resolver.WithDeduplicateEquivalent(f.Dedup),
		resolver.WithLogger(s.logger),
	}
	if f.Naming != "" {
		st, err := naming.ParseStrategy(f.Naming)
		if err != nil {
			return nil, err
		}
		s.opts = append(s.opts, resolver.WithSchemaNaming(st))
	}
	if f.NameTemplate != "" {
		s.opts = append(s.opts, resolver.WithSchemaNameTemplate(f.NameTemplate))
	}
	return s, nil
}

// failed reports whether any reported diagnostic reaches the fail-on level.
// Dropped elements are warnings, so the default level only fails builds
// that aborted or inputs that could not be read.
func (s *settings) failed(rep *report.Report) bool {
	for name, n := range rep.Counts {
		level, err := severity.Parse(name)
		if err == nil && n > 0 && level.AtLeast(s.failOn) {
			return true
		}
	}
	return false
}

// emit writes rep in the requested format and maps the outcome to ErrFailed.
func emit(w io.Writer, title, input string, rep *report.Report, flags *ResolveFlags, s *settings) error {
	rep.Filter(s.threshold)
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(w, rep, flags.Format); err != nil {
			return err
		}
	} else {
		writeText(w, title, input, rep, flags.Quiet)
	}
	if s.failed(rep) {
		return ErrFailed
	}
	return nil
}

func writeText(w io.Writer, title, input string, rep *report.Report, quiet bool) {
	if !quiet {
		cliutil.Heading(w, title)
		Writef(w, "Input: %s\n", input)
		Writef(w, "Declarations: %d\n", rep.Declarations)
		if rep.Stats != nil {
			Writef(w, "OpenAPI: %s\n", rep.OpenAPI)
			if rep.Title != "" {
				Writef(w, "Title: %s (%s)\n", rep.Title, rep.Version)
			}
			Writef(w, "Paths: %d\n", rep.Stats.Paths)
			Writef(w, "Operations: %d\n", rep.Stats.Operations)
			Writef(w, "Components: %d\n", rep.Stats.Components)
			Writef(w, "Tags: %d\n", rep.Stats.Tags)
			Writef(w, "Hidden: %d\n", rep.Stats.Hidden)
			Writef(w, "Dropped: %d\n", rep.Stats.Dropped)
		}
		Writef(w, "\n")

		if len(rep.Operations) > 0 {
			Writef(w, "Operations (%d):\n", len(rep.Operations))
			for _, op := range rep.Operations {
				Writef(w, "  %-7s %s", op.Method, op.Path)
				if op.OperationID != "" {
					Writef(w, " (%s)", op.OperationID)
				}
				Writef(w, "\n")
			}
			Writef(w, "\n")
		}
		writeDiagnostics(w, "Errors", rep.Errors)
		writeDiagnostics(w, "Unresolved References", rep.Unresolved)
		writeDiagnostics(w, "Warnings", rep.Warnings)
	}

	if rep.OK {
		Writef(w, "%s Resolved %s", green("✓"), cliutil.Plural(len(rep.Operations), "operation"))
		if n := len(rep.Unresolved); n > 0 {
			Writef(w, ", %s", cliutil.Plural(n, "unresolved reference"))
		}
		Writef(w, "\n")
		return
	}
	Writef(w, "%s Resolution reported %s\n", red("✗"), cliutil.Plural(len(rep.Errors), "error"))
}

func writeDiagnostics(w io.Writer, heading string, diags []report.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	Writef(w, "%s (%d):\n", heading, len(diags))
	for _, d := range diags {
		Writef(w, "  %s", severityLabel(d.Severity))
		if d.Source != "" {
			Writef(w, " %s:", d.Source)
		}
		if d.Path != "" {
			Writef(w, " %s:", d.Path)
		}
		Writef(w, " %s\n", d.Message)
	}
	Writef(w, "\n")
}

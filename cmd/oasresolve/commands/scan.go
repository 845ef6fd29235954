package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasresolve/internal/cliutil"
	"github.com/erraggy/oasresolve/internal/report"
	"github.com/erraggy/oasresolve/oaserrors"
	"github.com/erraggy/oasresolve/resolver"
	"github.com/erraggy/oasresolve/scan"
)

// ScanFlags contains flags for the scan command
type ScanFlags struct {
	ResolveFlags
	Dir   string
	Tests bool
}

// SetupScanFlags creates and configures a FlagSet for the scan command.
// Returns the FlagSet and a ScanFlags struct with bound flag variables.
func SetupScanFlags() (*flag.FlagSet, *ScanFlags) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	flags := &ScanFlags{}
	bindResolveFlags(fs, &flags.ResolveFlags)
	fs.StringVar(&flags.Dir, "C", ".", "directory the package patterns are relative to")
	fs.StringVar(&flags.Dir, "dir", ".", "directory the package patterns are relative to")
	fs.BoolVar(&flags.Tests, "tests", false, "include _test.go files")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasresolve scan [flags] [packages]\n\n")
		Writef(fs.Output(), "Collect //oas:<kind> directives from Go packages and resolve them.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nDirectives:\n")
		Writef(fs.Output(), "  //oas:<kind> <yaml value>        on a package clause, type, method or function\n")
		Writef(fs.Output(), "  //oas:<kind>(<param>) <value>   selects a function parameter\n")
		Writef(fs.Output(), "  //oas:<kind>                    explicit empty value (\"none, do not inherit\")\n")
		Writef(fs.Output(), "  Run 'oasresolve kinds' to list the declarable kinds.\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasresolve scan ./...\n")
		Writef(fs.Output(), "  oasresolve scan -C ./service --format yaml ./api/...\n")
		Writef(fs.Output(), "  oasresolve scan --fail-on warning ./...\n")
	}

	return fs, flags
}

// HandleScan executes the scan command
func HandleScan(args []string) error {
	fs, flags := SetupScanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	s, err := flags.validate()
	if err != nil {
		return err
	}

	ctx := context.Background()
	res, scanErr := scan.Packages(ctx, flags.Dir, fs.Args(), scan.WithTests(flags.Tests), scan.WithLogger(s.logger))
	var batch oaserrors.Errors
	if scanErr != nil && !errors.As(scanErr, &batch) {
		return fmt.Errorf("scanning packages: %w", scanErr)
	}

	r, err := resolver.New(s.opts...)
	if err != nil {
		return err
	}
	rep := report.Build(r.Resolve(res.Declarations))
	rep.Add(scanErr)

	input := fmt.Sprintf("%s (%s, %s)", flags.Dir, cliutil.Plural(res.Packages, "package"), cliutil.Plural(res.Files, "file"))
	return emit(stdout, "OpenAPI Directive Scanner", input, rep, &flags.ResolveFlags, s)
}

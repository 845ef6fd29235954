package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/internal/report"
	"github.com/erraggy/oasresolve/oaserrors"
	"github.com/erraggy/oasresolve/resolver"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	ResolveFlags
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}
	bindResolveFlags(fs, &flags.ResolveFlags)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasresolve check [flags] <file|-> [file...]\n\n")
		Writef(fs.Output(), "Resolve one or more declaration files and report the outcome.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nDeclaration files are YAML or JSON with a top-level declarations list:\n")
		Writef(fs.Output(), "  declarations:\n")
		Writef(fs.Output(), "    - scope: {package: shop, type: Orders, method: list}\n")
		Writef(fs.Output(), "      kind: apiResponse\n")
		Writef(fs.Output(), "      value: {responseCode: \"200\", description: OK}\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasresolve check declarations.yaml\n")
		Writef(fs.Output(), "  oasresolve check --dedup --naming qualified shop.yaml billing.yaml\n")
		Writef(fs.Output(), "  cat declarations.yaml | oasresolve check --format json - | jq '.ok'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    No diagnostic reached the --fail-on severity\n")
		Writef(fs.Output(), "  1    The build failed or a diagnostic reached the --fail-on severity\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("check command requires at least one declaration file or '-' for stdin")
	}

	// Validate flags early to fail fast before reading input
	s, err := flags.validate()
	if err != nil {
		return err
	}

	set, loadErr := loadDeclarations(fs.Args(), os.Stdin)
	r, err := resolver.New(s.opts...)
	if err != nil {
		return err
	}
	rep := report.Build(r.Resolve(set))
	rep.Add(loadErr)

	input := strings.Join(fs.Args(), ", ")
	if input == StdinFilePath {
		input = "<stdin>"
	}
	return emit(stdout, "OpenAPI Annotation Resolver", input, rep, &flags.ResolveFlags, s)
}

// loadDeclarations reads every path into one set. Seq values of later files
// are offset past the earlier ones so that file order is kept. Load errors
// are returned as one batch alongside the records that could be read.
func loadDeclarations(paths []string, stdin io.Reader) (decl.Set, error) {
	var (
		set  decl.Set
		errs oaserrors.Errors
		base int
	)
	for _, path := range paths {
		var (
			part decl.Set
			err  error
		)
		if path == StdinFilePath {
			var data []byte
			data, err = io.ReadAll(stdin)
			if err == nil {
				part, err = decl.LoadBytes("stdin", data)
			}
		} else {
			part, err = decl.LoadFile(path)
		}
		var batch oaserrors.Errors
		switch {
		case errors.As(err, &batch):
			errs = append(errs, batch...)
		case err != nil:
			errs = append(errs, err)
		}
		next := base
		for _, d := range part {
			d.Seq += base
			if d.Seq >= next {
				next = d.Seq + 1
			}
			set = append(set, d)
		}
		base = next
	}
	return set, errs.ErrOrNil()
}

package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/scan"
)

// KindsFlags contains flags for the kinds command
type KindsFlags struct {
	Format string
}

// SetupKindsFlags creates and configures a FlagSet for the kinds command.
func SetupKindsFlags() (*flag.FlagSet, *KindsFlags) {
	fs := flag.NewFlagSet("kinds", flag.ContinueOnError)
	flags := &KindsFlags{}
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasresolve kinds [flags]\n\n")
		Writef(fs.Output(), "List the declarable annotation kinds and their directives.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// kindEntry is one row of the kinds listing.
type kindEntry struct {
	Kind      string `json:"kind"      yaml:"kind"`
	Directive string `json:"directive" yaml:"directive"`
}

// HandleKinds executes the kinds command
func HandleKinds(args []string) error {
	fs, flags := SetupKindsFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("kinds command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	kinds := decl.Kinds()
	entries := make([]kindEntry, 0, len(kinds))
	for _, k := range kinds {
		entries = append(entries, kindEntry{Kind: string(k), Directive: scan.Prefix + string(k)})
	}
	if flags.Format != FormatText {
		return OutputStructured(stdout, entries, flags.Format)
	}
	for _, e := range entries {
		Writef(stdout, "%-24s %s\n", e.Kind, e.Directive)
	}
	return nil
}

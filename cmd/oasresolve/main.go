package main

import (
	"errors"
	"fmt"
	"os"

	oasresolve "github.com/erraggy/oasresolve"
	"github.com/erraggy/oasresolve/cmd/oasresolve/commands"
)

// commandNames lists the commands suggestCommand can propose.
var commandNames = []string{"check", "scan", "kinds", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasresolve %s\n", oasresolve.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "check":
		err = commands.HandleCheck(os.Args[2:])
	case "scan":
		err = commands.HandleScan(os.Args[2:])
	case "kinds":
		err = commands.HandleKinds(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, commands.ErrFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oasresolve - OpenAPI Annotation Resolver

Usage:
  oasresolve <command> [options]

Commands:
  check       Resolve declaration files and report the outcome
  scan        Collect //oas: directives from Go packages and resolve them
  kinds       List the declarable annotation kinds
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasresolve check declarations.yaml
  oasresolve check --format json - < declarations.yaml
  oasresolve scan ./...
  oasresolve scan --dedup --naming qualified -C ./service ./api/...

Run 'oasresolve <command> --help' for more information on a command.`)
}

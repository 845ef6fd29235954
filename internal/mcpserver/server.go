// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasresolve capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	oasresolve "github.com/erraggy/oasresolve"
)

const serverInstructions = `oasresolve MCP server: resolves OpenAPI declaration records (from a declaration file or from //oas: directive comments in Go packages) into an OpenAPI document and reports diagnostics.

Configuration: All defaults are configurable via OASRESOLVE_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASRESOLVE_OPENAPI_VERSION (default: 3.1.0) - OpenAPI version written to documents
- OASRESOLVE_DEFAULT_MEDIA_TYPE (default: */*) - media type for content declared without one
- OASRESOLVE_SCHEMA_NAMING - naming strategy for implementation refs (type, qualified, pascal, camel, snake, kebab)
- OASRESOLVE_DEDUPLICATE (default: false) - collapse structurally equal definitions
- OASRESOLVE_MIN_SEVERITY (default: info) - drop warnings below this severity
- OASRESOLVE_SCAN_TESTS (default: false) - include _test.go files when scanning
- OASRESOLVE_LIST_LIMIT (default: 100) - default number of operations returned
- OASRESOLVE_CACHE_FILE_TTL (default: 15m) - cache TTL for local declaration files
- OASRESOLVE_CACHE_URL_TTL (default: 5m) - cache TTL for URL-fetched declaration files
- OASRESOLVE_CACHE_ENABLED (default: true) - disable caching entirely

Caching: Loaded declaration files are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s. Scans are never cached.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return newServer(ctx).Run(ctx, &mcp.StdioTransport{})
}

func newServer(ctx context.Context) *mcp.Server {
	if cfg.CacheEnabled {
		declCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasresolve", Version: oasresolve.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve a declaration file (YAML or JSON with a top-level declarations list of {scope, seq, source, kind, value} records) into an OpenAPI document. Returns the document title, version, statistics, the built operations and diagnostics: errors (dropped elements, or duplicate definitions that abort the build), unresolved references and warnings. Use group_by (severity or category) to get diagnostic counts instead of individual items. Use offset/limit to page through operations.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan",
		Description: "Scan Go packages for //oas:<kind> directive comments and resolve them. Directives on the package clause, types, methods and functions declare records at package, type, method and argument scope; //oas:<kind>(arg) selects a function parameter. Returns package and file counts plus the same report as resolve; malformed directives are reported as parse errors. Use patterns like ./... to scan a whole module.",
	}, handleScan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "kinds",
		Description: "List every declarable annotation kind and its directive prefix.",
	}, handleKinds)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is empty or one of allowed.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/internal/naming"
	"github.com/erraggy/oasresolve/internal/report"
	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/resolver"
	"github.com/erraggy/oasresolve/scan"
)

// resolveSettings overrides the server's resolver defaults for one call.
type resolveSettings struct {
	OpenAPIVersion   string `json:"openapi_version,omitempty"    jsonschema:"OpenAPI version written to the document (default from OASRESOLVE_OPENAPI_VERSION)"`
	DefaultMediaType string `json:"default_media_type,omitempty" jsonschema:"Media type for content declared without one (default from OASRESOLVE_DEFAULT_MEDIA_TYPE)"`
	Naming           string `json:"naming,omitempty"             jsonschema:"Schema naming strategy for implementation refs: type, qualified, pascal, camel, snake, kebab"`
	NameTemplate     string `json:"name_template,omitempty"      jsonschema:"Go text/template for schema names, e.g. {{pascal .Package}}{{.Type}}"`
	Deduplicate      *bool  `json:"deduplicate,omitempty"        jsonschema:"Collapse structurally equal definitions instead of failing"`
	MinSeverity      string `json:"min_severity,omitempty"       jsonschema:"Drop warnings below this severity: info, warning, error"`
}

// options builds resolver options from the call settings over the server
// configuration.
func (s resolveSettings) options() ([]resolver.Option, severity.Severity, error) {
	version := cfg.OpenAPIVersion
	if s.OpenAPIVersion != "" {
		version = s.OpenAPIVersion
	}
	mediaType := cfg.DefaultMediaType
	if s.DefaultMediaType != "" {
		mediaType = s.DefaultMediaType
	}
	dedup := cfg.Deduplicate
	if s.Deduplicate != nil {
		dedup = *s.Deduplicate
	}
	opts := []resolver.Option{
		resolver.WithOpenAPIVersion(version),
		resolver.WithDefaultMediaType(mediaType),
		resolver.WithDeduplicateEquivalent(dedup),
	}

	strategy := cfg.SchemaNaming
	if s.Naming != "" {
		strategy = s.Naming
	}
	if strategy != "" {
		st, err := naming.ParseStrategy(strategy)
		if err != nil {
			return nil, 0, err
		}
		opts = append(opts, resolver.WithSchemaNaming(st))
	}
	if s.NameTemplate != "" {
		opts = append(opts, resolver.WithSchemaNameTemplate(s.NameTemplate))
	}

	level := cfg.MinSeverity
	if s.MinSeverity != "" {
		level = s.MinSeverity
	}
	threshold, err := severity.Parse(level)
	if err != nil {
		return nil, 0, err
	}
	return opts, threshold, nil
}

var diagnosticGroups = []string{"severity", "category"}

type resolveInput struct {
	Declarations declInput       `json:"declarations"           jsonschema:"The declaration file to resolve"`
	Options      resolveSettings `json:"options,omitempty"      jsonschema:"Resolver settings for this call"`
	GroupBy      string          `json:"group_by,omitempty"     jsonschema:"Count diagnostics by severity or category instead of listing them"`
	Offset       int             `json:"offset,omitempty"       jsonschema:"Skip the first N operations"`
	Limit        int             `json:"limit,omitempty"        jsonschema:"Maximum number of operations to return (default from OASRESOLVE_LIST_LIMIT)"`
}

type resolveOutput struct {
	Report          *report.Report `json:"report"`
	Groups          []groupCount   `json:"groups,omitempty"`
	TotalOperations int            `json:"total_operations"`
	Returned        int            `json:"returned"`
}

func handleResolve(ctx context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	if err := validateGroupBy(input.GroupBy, diagnosticGroups); err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	set, err := input.Declarations.load(ctx)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	out, err := summarize(set, nil, input.Options, input.GroupBy, input.Offset, input.Limit)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	return nil, out, nil
}

// summarize resolves set and reports the outcome. loadErr carries errors
// found while producing set; they are reported alongside resolution errors.
func summarize(set decl.Set, loadErr error, settings resolveSettings, groupBy string, offset, limit int) (resolveOutput, error) {
	opts, threshold, err := settings.options()
	if err != nil {
		return resolveOutput{}, err
	}
	r, err := resolver.New(opts...)
	if err != nil {
		return resolveOutput{}, err
	}
	rep := report.Build(r.Resolve(set))
	rep.Add(loadErr)
	rep.Filter(threshold)

	out := resolveOutput{Report: rep, TotalOperations: len(rep.Operations)}
	rep.Operations = paginate(rep.Operations, offset, limit)
	out.Returned = len(rep.Operations)

	if groupBy != "" {
		out.Groups = groupDiagnostics(rep, groupBy)
		rep.Errors, rep.Unresolved, rep.Warnings = nil, nil, nil
	}
	return out, nil
}

func groupDiagnostics(rep *report.Report, groupBy string) []groupCount {
	var all []report.Diagnostic
	all = append(all, rep.Errors...)
	all = append(all, rep.Unresolved...)
	all = append(all, rep.Warnings...)
	return groupAndSort(all, func(d report.Diagnostic) []string {
		if strings.EqualFold(groupBy, "category") {
			if d.Category == "" {
				return []string{"other"}
			}
			return []string{d.Category}
		}
		return []string{d.Severity}
	})
}

type kindsInput struct{}

type kindInfo struct {
	Kind      string `json:"kind"`
	Directive string `json:"directive"`
}

type kindsOutput struct {
	Kinds []kindInfo `json:"kinds"`
}

func handleKinds(_ context.Context, _ *mcp.CallToolRequest, _ kindsInput) (*mcp.CallToolResult, kindsOutput, error) {
	kinds := decl.Kinds()
	out := kindsOutput{Kinds: make([]kindInfo, 0, len(kinds))}
	for _, k := range kinds {
		out.Kinds = append(out.Kinds, kindInfo{Kind: string(k), Directive: scan.Prefix + string(k)})
	}
	return nil, out, nil
}

package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasresolve/internal/report"
	"github.com/erraggy/oasresolve/oaserrors"
	"github.com/erraggy/oasresolve/scan"
)

type scanInput struct {
	Dir      string          `json:"dir"                jsonschema:"Directory of the Go module or package to scan"`
	Patterns []string        `json:"patterns,omitempty" jsonschema:"Package patterns relative to dir (default: .), e.g. ./..."`
	Tests    *bool           `json:"tests,omitempty"    jsonschema:"Include _test.go files (default from OASRESOLVE_SCAN_TESTS)"`
	Options  resolveSettings `json:"options,omitempty"  jsonschema:"Resolver settings for this call"`
	GroupBy  string          `json:"group_by,omitempty" jsonschema:"Count diagnostics by severity or category instead of listing them"`
	Offset   int             `json:"offset,omitempty"   jsonschema:"Skip the first N operations"`
	Limit    int             `json:"limit,omitempty"    jsonschema:"Maximum number of operations to return (default from OASRESOLVE_LIST_LIMIT)"`
}

type scanOutput struct {
	Packages        int            `json:"packages"`
	Files           int            `json:"files"`
	Report          *report.Report `json:"report"`
	Groups          []groupCount   `json:"groups,omitempty"`
	TotalOperations int            `json:"total_operations"`
	Returned        int            `json:"returned"`
}

func handleScan(ctx context.Context, _ *mcp.CallToolRequest, input scanInput) (*mcp.CallToolResult, scanOutput, error) {
	if input.Dir == "" {
		return errResult(errors.New("dir is required")), scanOutput{}, nil
	}
	if err := validateGroupBy(input.GroupBy, diagnosticGroups); err != nil {
		return errResult(err), scanOutput{}, nil
	}
	tests := cfg.ScanTests
	if input.Tests != nil {
		tests = *input.Tests
	}

	res, err := scan.Packages(ctx, input.Dir, input.Patterns, scan.WithTests(tests))
	var batch oaserrors.Errors
	if err != nil && !errors.As(err, &batch) {
		// the packages could not be loaded at all
		return errResult(err), scanOutput{}, nil
	}

	out, sumErr := summarize(res.Declarations, err, input.Options, input.GroupBy, input.Offset, input.Limit)
	if sumErr != nil {
		return errResult(sumErr), scanOutput{}, nil
	}
	return nil, scanOutput{
		Packages:        res.Packages,
		Files:           res.Files,
		Report:          out.Report,
		Groups:          out.Groups,
		TotalOperations: out.TotalOperations,
		Returned:        out.Returned,
	}, nil
}

package commands

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasresolve/internal/report"
	"github.com/erraggy/oasresolve/internal/severity"
)

const shopDeclarations = `declarations:
  - scope: {package: shop}
    kind: openAPIDefinition
    value: {info: {title: Shop, version: "2.0"}}
  - scope: {package: shop, type: Orders}
    kind: endpoint
    value: {path: /orders}
  - scope: {package: shop, type: Orders, method: list}
    kind: endpoint
    value: {method: get}
  - scope: {package: shop, type: Orders, method: list}
    kind: operation
    value: {operationId: listOrders}
  - scope: {package: shop, type: Orders, method: list}
    kind: apiResponse
    value: {responseCode: "200", description: OK, content: [{schema: {ref: Order}}]}
  - scope: {package: shop, type: Orders, method: list}
    kind: extension
    value: {name: x-cache, value: "1"}
  - scope: {package: shop, type: Orders, method: list}
    kind: extension
    value: {name: x-cache, value: "2"}
`

const conflictingTags = `declarations:
  - scope: {package: shop, type: A}
    kind: tag
    value: {name: orders, description: first}
  - scope: {package: shop, type: B}
    kind: tag
    value: {name: orders, description: second}
`

// captureStdout redirects report output to a buffer for the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = saved })
	return &buf
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"key": "value"}

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		var got map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml format", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.Equal(t, "key: value\n", buf.String())
	})

	t.Run("text is not structured", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, OutputStructured(&buf, data, FormatText))
	})
}

func TestResolveFlagsValidate(t *testing.T) {
	parse := func(t *testing.T, args ...string) *ResolveFlags {
		t.Helper()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		flags := &ResolveFlags{}
		bindResolveFlags(fs, flags)
		require.NoError(t, fs.Parse(args))
		return flags
	}

	t.Run("defaults", func(t *testing.T) {
		s, err := parse(t).validate()
		require.NoError(t, err)
		assert.Equal(t, "info", s.threshold.String())
		assert.Equal(t, "error", s.failOn.String())
		assert.Len(t, s.opts, 4)
	})

	t.Run("naming and template", func(t *testing.T) {
		s, err := parse(t, "--naming", "qualified", "--name-template", "{{.Type}}").validate()
		require.NoError(t, err)
		assert.Len(t, s.opts, 6)
	})

	invalid := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"--format", "xml"}, "invalid format"},
		{"min-severity", []string{"--min-severity", "fatal"}, "invalid min-severity"},
		{"fail-on", []string{"--fail-on", "never"}, "invalid fail-on"},
		{"naming", []string{"--naming", "upper"}, "unknown naming strategy"},
	}
	for _, tt := range invalid {
		t.Run("invalid "+tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...).validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFailed(t *testing.T) {
	rep := &report.Report{OK: false, Counts: map[string]int{"warning": 1, "info": 2}}

	s := &settings{}
	var err error
	s.failOn, err = severity.Parse("error")
	require.NoError(t, err)
	assert.False(t, s.failed(rep), "dropped elements are warnings")

	s.failOn, err = severity.Parse("warning")
	require.NoError(t, err)
	assert.True(t, s.failed(rep))

	rep.Counts["error"] = 1
	s.failOn, err = severity.Parse("error")
	require.NoError(t, err)
	assert.True(t, s.failed(rep))
}

func TestWriteText(t *testing.T) {
	rep := &report.Report{
		OK:         true,
		Operations: []report.Operation{{Method: "GET", Path: "/orders", OperationID: "listOrders"}},
		Unresolved: []report.Diagnostic{{Severity: "info", Source: "shop.yaml:14", Message: "unresolved reference"}},
	}

	t.Run("full", func(t *testing.T) {
		var buf bytes.Buffer
		writeText(&buf, "Title", "shop.yaml", rep, false)
		out := buf.String()
		assert.Contains(t, out, "Title\n=====\n")
		assert.Contains(t, out, "Input: shop.yaml")
		assert.Contains(t, out, "GET     /orders (listOrders)")
		assert.Contains(t, out, "Unresolved References (1):\n  [info] shop.yaml:14: unresolved reference")
		assert.Contains(t, out, "✓ Resolved 1 operation, 1 unresolved reference")
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		writeText(&buf, "Title", "shop.yaml", rep, true)
		assert.Equal(t, "✓ Resolved 1 operation, 1 unresolved reference\n", buf.String())
	})

	t.Run("failed", func(t *testing.T) {
		var buf bytes.Buffer
		failed := &report.Report{Errors: []report.Diagnostic{{Severity: "error", Message: "boom"}}}
		writeText(&buf, "Title", "shop.yaml", failed, true)
		assert.Equal(t, "✗ Resolution reported 1 error\n", buf.String())
	})
}

func TestEmitStructured(t *testing.T) {
	rep := &report.Report{OK: true, Title: "Shop", Warnings: []report.Diagnostic{{Severity: "info", Message: "default"}}}
	flags := &ResolveFlags{Format: FormatYAML}
	s := &settings{}
	var err error
	s.threshold, err = severity.Parse("warning")
	require.NoError(t, err)
	s.failOn, err = severity.Parse("error")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, emit(&buf, "Title", "in", rep, flags, s))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, "Shop", got["title"])
	assert.NotContains(t, got, "warnings", "info warnings are filtered")
}

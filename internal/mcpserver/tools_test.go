package mcpserver

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDeclarations = `declarations:
  - scope: {package: pets}
    kind: openAPIDefinition
    value:
      info: {title: Pet Store, version: "1.0.0"}
      servers: [{url: "https://api.example.com"}]
      tags: [{name: pets, description: Everything about pets}]
  - scope: {package: pets, type: Pet}
    kind: schema
    value: {type: object, requiredProperties: [name]}
  - scope: {package: pets, type: PetResource}
    kind: endpoint
    value: {path: /pets, produces: [application/json]}
  - scope: {package: pets, type: PetResource}
    kind: tag
    value: {ref: pets}
  - scope: {package: pets, type: PetResource, method: list}
    kind: endpoint
    value: {method: get}
  - scope: {package: pets, type: PetResource, method: list}
    kind: operation
    value: {operationId: listPets}
  - scope: {package: pets, type: PetResource, method: list}
    kind: apiResponse
    value: {responseCode: "200", description: OK, content: [{schema: {implementation: Pet}}]}
  - scope: {package: pets, type: PetResource, method: get}
    kind: endpoint
    value: {method: get, path: "/{id}"}
  - scope: {package: pets, type: PetResource, method: get}
    kind: operation
    value: {operationId: getPet}
  - scope: {package: pets, type: PetResource, method: get, arg: id}
    kind: parameter
    value: {in: path, schema: {type: string}}
  - scope: {package: pets, type: PetResource, method: get}
    kind: apiResponse
    value: {responseCode: "404", ref: NotFound}
`

func TestResolveTool(t *testing.T) {
	declCache.reset()
	input := resolveInput{Declarations: declInput{Content: testDeclarations}}
	_, output, err := handleResolve(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, output.Report)

	rep := output.Report
	assert.True(t, rep.OK)
	assert.Equal(t, "Pet Store", rep.Title)
	assert.Equal(t, "3.1.0", rep.OpenAPI)
	assert.Equal(t, 11, rep.Declarations)
	assert.Equal(t, 2, output.TotalOperations)
	assert.Equal(t, 2, output.Returned)
	require.Len(t, rep.Operations, 2)
	assert.Equal(t, "/pets", rep.Operations[0].Path)
	assert.Equal(t, "listPets", rep.Operations[0].OperationID)
	assert.Equal(t, []string{"pets"}, rep.Operations[0].Tags)
	assert.Equal(t, "/pets/{id}", rep.Operations[1].Path)

	require.Len(t, rep.Unresolved, 1)
	assert.Contains(t, rep.Unresolved[0].Message, "#/components/responses/NotFound")
	assert.Equal(t, 1, declCache.size())
}

func TestResolveTool_Pagination(t *testing.T) {
	input := resolveInput{Declarations: declInput{Content: testDeclarations}, Offset: 1, Limit: 5}
	_, output, err := handleResolve(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, 2, output.TotalOperations)
	assert.Equal(t, 1, output.Returned)
	require.Len(t, output.Report.Operations, 1)
	assert.Equal(t, "getPet", output.Report.Operations[0].OperationID)
}

func TestResolveTool_GroupBy(t *testing.T) {
	input := resolveInput{Declarations: declInput{Content: testDeclarations}, GroupBy: "category"}
	_, output, err := handleResolve(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Empty(t, output.Report.Warnings)
	assert.Empty(t, output.Report.Unresolved)
	assert.Contains(t, output.Groups, groupCount{Key: "unresolved_reference", Count: 1})
}

func TestResolveTool_Options(t *testing.T) {
	dedup := false
	input := resolveInput{
		Declarations: declInput{Content: testDeclarations},
		Options: resolveSettings{
			OpenAPIVersion: "3.0.3",
			Naming:         "snake",
			Deduplicate:    &dedup,
			MinSeverity:    "warning",
		},
	}
	_, output, err := handleResolve(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", output.Report.OpenAPI)
	for _, w := range output.Report.Warnings {
		assert.NotEqual(t, "info", w.Severity)
	}
}

func TestResolveTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input resolveInput
		want  string
	}{
		{
			name:  "no input",
			input: resolveInput{},
			want:  "exactly one of file, url, or content",
		},
		{
			name:  "two inputs",
			input: resolveInput{Declarations: declInput{Content: testDeclarations, File: "decls.yaml"}},
			want:  "got 2",
		},
		{
			name:  "bad group_by",
			input: resolveInput{Declarations: declInput{Content: testDeclarations}, GroupBy: "path"},
			want:  "invalid group_by",
		},
		{
			name:  "bad naming",
			input: resolveInput{Declarations: declInput{Content: testDeclarations}, Options: resolveSettings{Naming: "upper"}},
			want:  "unknown naming strategy",
		},
		{
			name:  "bad severity",
			input: resolveInput{Declarations: declInput{Content: testDeclarations}, Options: resolveSettings{MinSeverity: "fatal"}},
			want:  "unknown severity",
		},
		{
			name:  "bad yaml",
			input: resolveInput{Declarations: declInput{Content: "declarations: [\n"}},
			want:  "parse error",
		},
		{
			name:  "missing file",
			input: resolveInput{Declarations: declInput{File: "/tmp/does-not-exist/decls.yaml"}},
			want:  "<path>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleResolve(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text := result.Content[0].(*mcp.TextContent).Text
			assert.Contains(t, text, tt.want)
		})
	}
}

func TestResolveTool_DuplicateDefinition(t *testing.T) {
	content := `declarations:
  - scope: {package: pets, type: A}
    kind: tag
    value: {name: pets, description: first}
  - scope: {package: pets, type: B}
    kind: tag
    value: {name: pets, description: second}
`
	result, output, err := handleResolve(context.Background(), &mcp.CallToolRequest{}, resolveInput{Declarations: declInput{Content: content}})
	require.NoError(t, err)
	assert.Nil(t, result, "a failed build is a report, not a tool error")
	assert.False(t, output.Report.OK)
	require.Len(t, output.Report.Errors, 1)
	assert.Equal(t, "duplicate_definition", output.Report.Errors[0].Category)
	assert.Empty(t, output.Report.Operations)
}

func TestDeclInput_FileCache(t *testing.T) {
	declCache.reset()
	path := filepath.Join(t.TempDir(), "decls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDeclarations), 0o600))

	in := declInput{File: path}
	first, err := in.load(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 11)
	assert.Equal(t, 1, declCache.size())

	second, err := in.load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, declCache.size())
}

func TestDeclInput_InlineSizeLimit(t *testing.T) {
	saved := cfg.MaxInlineSize
	cfg.MaxInlineSize = 16
	t.Cleanup(func() { cfg.MaxInlineSize = saved })

	_, err := declInput{Content: testDeclarations}.load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 16 bytes")
}

func TestDeclCache_Eviction(t *testing.T) {
	c := &declCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	c.putWithTTL("a", nil, time.Minute)
	c.putWithTTL("b", nil, time.Minute)
	c.entries["a"].insertAt = time.Now().Add(-time.Hour)
	c.putWithTTL("c", nil, time.Minute)
	assert.Equal(t, 2, c.size())
	_, ok := c.get("a")
	assert.False(t, ok, "oldest entry is evicted")
	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestDeclCache_Expiry(t *testing.T) {
	c := &declCacheStore{entries: make(map[string]*cacheEntry), maxSize: 10}
	c.putWithTTL("expired", nil, -time.Second)
	c.putWithTTL("live", nil, time.Minute)
	c.sweep()
	assert.Equal(t, 1, c.size())
	_, ok := c.get("expired")
	assert.False(t, ok)
}

func TestKindsTool(t *testing.T) {
	_, output, err := handleKinds(context.Background(), &mcp.CallToolRequest{}, kindsInput{})
	require.NoError(t, err)
	assert.Len(t, output.Kinds, 24)
	assert.Contains(t, output.Kinds, kindInfo{Kind: "apiResponse", Directive: "//oas:apiResponse"})
}

func TestScanTool(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/pets\n\ngo 1.21\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pets.go"), []byte(`//oas:openAPIDefinition {info: {title: Pets, version: "1"}}
package pets

//oas:endpoint {path: /pets}
type PetResource struct{}

//oas:endpoint {method: get}
//oas:operation {operationId: listPets}
//oas:widget
func (PetResource) List() {}
`), 0o600))

	result, output, err := handleScan(context.Background(), &mcp.CallToolRequest{}, scanInput{Dir: dir})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 1, output.Packages)
	assert.Equal(t, 1, output.Files)
	require.NotNil(t, output.Report)
	assert.False(t, output.Report.OK, "the malformed directive is reported")
	require.Len(t, output.Report.Operations, 1)
	assert.Equal(t, "listPets", output.Report.Operations[0].OperationID)
	require.Len(t, output.Report.Errors, 1)
	assert.Equal(t, "parse", output.Report.Errors[0].Category)
}

func TestScanTool_RequiresDir(t *testing.T) {
	result, _, err := handleScan(context.Background(), &mcp.CallToolRequest{}, scanInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/oaserrors"
	"github.com/erraggy/oasresolve/resolver"
)

const declarations = `declarations:
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

func load(t *testing.T, data string) decl.Set {
	t.Helper()
	set, err := decl.LoadBytes("shop.yaml", []byte(data))
	require.NoError(t, err)
	return set
}

func TestBuild(t *testing.T) {
	r := Build(resolver.Resolve(load(t, declarations)))

	assert.False(t, r.OK)
	assert.Equal(t, "Shop", r.Title)
	assert.Equal(t, "2.0", r.Version)
	assert.Equal(t, resolver.DefaultOpenAPIVersion, r.OpenAPI)
	assert.Equal(t, 7, r.Declarations)
	require.NotNil(t, r.Stats)
	assert.Equal(t, 1, r.Stats.Operations)

	require.Len(t, r.Operations, 1)
	assert.Equal(t, Operation{Method: "GET", Path: "/orders", OperationID: "listOrders"}, r.Operations[0])

	require.Len(t, r.Errors, 1)
	assert.Equal(t, "duplicate_extension_key", r.Errors[0].Category)
	assert.Equal(t, "warning", r.Errors[0].Severity)
	assert.Equal(t, "shop.Orders.list extensions", r.Errors[0].Path)
	assert.Equal(t, "shop.yaml:17, shop.yaml:20", r.Errors[0].Source)

	require.Len(t, r.Unresolved, 1)
	assert.Equal(t, "info", r.Unresolved[0].Severity)
	assert.Contains(t, r.Unresolved[0].Message, "#/components/schemas/Order")

	assert.Equal(t, []string{"default_applied", "duplicate_extension_key", "unresolved_reference"}, r.Categories())
	assert.Equal(t, 1, r.Counts["warning"])
}

func TestBuildGlobalFailure(t *testing.T) {
	set := load(t, `declarations:
  - scope: {package: shop, type: A}
    kind: tag
    value: {name: orders, description: first}
  - scope: {package: shop, type: B}
    kind: tag
    value: {name: orders, description: second}
`)
	res, err := resolver.Resolve(set)
	require.Error(t, err)
	r := Build(res, err)

	assert.False(t, r.OK)
	assert.Nil(t, r.Stats)
	assert.Empty(t, r.Operations)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "duplicate_definition", r.Errors[0].Category)
	assert.Equal(t, "error", r.Errors[0].Severity)
	assert.Equal(t, "shop.yaml:2, shop.yaml:5", r.Errors[0].Source)
	assert.Equal(t, map[string]int{"error": 1}, r.Counts)
}

func TestFilter(t *testing.T) {
	r := Build(resolver.Resolve(load(t, declarations)))
	require.NotEmpty(t, r.Warnings)

	r.Filter(severity.SeverityWarning)
	for _, w := range r.Warnings {
		assert.NotEqual(t, "info", w.Severity)
	}
	// errors and unresolved references are never filtered
	assert.Len(t, r.Errors, 1)
	assert.Len(t, r.Unresolved, 1)
}

func TestAdd(t *testing.T) {
	r := &Report{OK: true}
	r.Add(nil)
	assert.True(t, r.OK)

	r.Add(oaserrors.Errors{
		&oaserrors.ParseError{Path: "user.go", Line: 3, Message: "bad"},
		&oaserrors.ParseError{Path: "user.go", Line: 9, Message: "worse"},
	})
	assert.False(t, r.OK)
	require.Len(t, r.Errors, 2)
	assert.Equal(t, "parse", r.Errors[0].Category)
	assert.Equal(t, "user.go", r.Errors[0].Path)
	assert.Equal(t, 2, r.Counts["error"])
}

package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleKinds(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out := captureStdout(t)
		require.NoError(t, HandleKinds(nil))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Len(t, lines, 24)
		assert.Contains(t, out.String(), "//oas:apiResponse")
	})

	t.Run("json", func(t *testing.T) {
		out := captureStdout(t)
		require.NoError(t, HandleKinds([]string{"--format", "json"}))
		var entries []kindEntry
		require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
		assert.Len(t, entries, 24)
		assert.Contains(t, entries, kindEntry{Kind: "schema", Directive: "//oas:schema"})
	})

	t.Run("arguments", func(t *testing.T) {
		assert.Error(t, HandleKinds([]string{"extra"}))
	})

	t.Run("help", func(t *testing.T) {
		assert.NoError(t, HandleKinds([]string{"--help"}))
	})
}

func TestHandleMCP_Arguments(t *testing.T) {
	assert.Error(t, HandleMCP([]string{"extra"}))
	assert.NoError(t, HandleMCP([]string{"--help"}))
}

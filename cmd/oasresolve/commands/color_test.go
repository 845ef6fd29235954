package commands

import (
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "[error]", severityLabel("error"))
	assert.Equal(t, "[unknown]", severityLabel("unknown"))

	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })
	assert.Equal(t, "\x1b[33m[warning]\x1b[0m", severityLabel("warning"))
}

func TestConfigureColor(t *testing.T) {
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })

	configureColor(true)
	assert.True(t, color.NoColor)
}

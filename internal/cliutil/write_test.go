package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d operations", "shop", 3)
	assert.Equal(t, "shop: 3 operations", buf.String())

	// A failing writer must not panic.
	Writef(failingWriter{}, "ignored")
}

func TestHeading(t *testing.T) {
	var buf bytes.Buffer
	Heading(&buf, "Résumé")
	assert.Equal(t, "Résumé\n======\n\n", buf.String())
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 errors", Plural(0, "error"))
	assert.Equal(t, "1 error", Plural(1, "error"))
	assert.Equal(t, "2 operations", Plural(2, "operation"))
}

package resolver

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasresolve/internal/naming"
	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/oaserrors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultOpenAPIVersion, cfg.OpenAPIVersion)
	assert.Equal(t, DefaultInfoTitle, cfg.DefaultInfoTitle)
	assert.Equal(t, "/", cfg.DefaultServerURL)
	assert.Equal(t, DefaultMediaType, cfg.DefaultMediaType)
	assert.Equal(t, "*/*", DefaultMediaType)
	assert.Equal(t, naming.TypeOnly, cfg.SchemaNaming)
	assert.False(t, cfg.DeduplicateEquivalent)
	assert.IsType(t, NopLogger{}, cfg.Logger)
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		opt    Option
		option string
	}{
		{"swagger version", WithOpenAPIVersion("2.0"), "OpenAPIVersion"},
		{"media type", WithDefaultMediaType("json"), "DefaultMediaType"},
		{"template", WithSchemaNameTemplate("{{"), "SchemaNameTemplate"},
		{"empty template output", WithSchemaNameTemplate("{{/* nothing */}}"), "SchemaNameTemplate"},
		{"naming strategy", WithSchemaNaming(naming.Strategy(42)), "SchemaNaming"},
		{"info", WithDefaultInfo("", "1.0"), "DefaultInfo"},
		{"server", WithDefaultServerURL(" "), "DefaultServerURL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.opt)
			require.Error(t, err)
			assert.Nil(t, r)
			var cfgErr *oaserrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.option, cfgErr.Option)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
			assert.Equal(t, severity.SeverityError, Classify(err))

			_, err = Resolve(nil, tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestWithOpenAPIVersion(t *testing.T) {
	res := mustResolve(t, nil, WithOpenAPIVersion(" 3.0.3 "))
	assert.Equal(t, "3.0.3", res.Document.OpenAPI)
}

func TestWithConfigFillsZeroFields(t *testing.T) {
	r, err := New(WithConfig(Config{DefaultInfoTitle: "Custom", DeduplicateEquivalent: true}))
	require.NoError(t, err)
	assert.Equal(t, "Custom", r.cfg.DefaultInfoTitle)
	assert.Equal(t, DefaultInfoVersion, r.cfg.DefaultInfoVersion)
	assert.Equal(t, DefaultOpenAPIVersion, r.cfg.OpenAPIVersion)
	assert.Equal(t, "*/*", r.cfg.DefaultMediaType)
	assert.True(t, r.cfg.DeduplicateEquivalent)
	assert.NotNil(t, r.cfg.Logger)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	res := mustResolve(t, airlineSet(), WithLogger(logger))
	require.NotNil(t, res)
	out := buf.String()
	assert.Contains(t, out, "entering phase")
	assert.Contains(t, out, "document resolved")

	r, err := New(WithLogger(nil))
	require.NoError(t, err)
	assert.IsType(t, NopLogger{}, r.cfg.Logger)
}

func TestPhaseOrder(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	p := newPass(r, nil)

	assert.Error(t, p.advance(phaseFiltered), "phases cannot be skipped")
	require.NoError(t, p.advance(phaseCollected))
	assert.Error(t, p.advance(phaseCollected), "phases cannot repeat")
	require.NoError(t, p.advance(phaseFiltered))
	require.NoError(t, p.advance(phaseMerged))
	require.NoError(t, p.advance(phaseResolved))
	require.NoError(t, p.advance(phaseFrozen))
	assert.Error(t, p.advance(phaseNew))
	assert.Equal(t, "freeze", p.phase.String())
	assert.Equal(t, "phase(9)", phase(9).String())
}

func TestResolverConcurrentUse(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	want, err := r.Resolve(airlineSet())
	require.NoError(t, err)

	const n = 8
	results := make(chan *Result, n)
	for i := 0; i < n; i++ {
		go func() {
			res, err := r.Resolve(airlineSet())
			if err != nil {
				results <- nil
				return
			}
			results <- res
		}()
	}
	for i := 0; i < n; i++ {
		got := <-results
		require.NotNil(t, got)
		assert.Equal(t, want.Document, got.Document)
	}
}

package resolver

import (
	"strings"

	"github.com/erraggy/oasresolve/internal/naming"
	"github.com/erraggy/oasresolve/model"
	"github.com/erraggy/oasresolve/oaserrors"
)

// Default configuration values.
const (
	DefaultOpenAPIVersion = "3.1.0"
	DefaultInfoTitle      = "Generated API"
	DefaultInfoVersion    = "1.0"
	DefaultMediaType      = model.DefaultMediaType
)

// Option is a function that configures a Resolver.
type Option func(*Config) error

// Config holds resolver configuration. Use DefaultConfig and the With*
// options rather than building one by hand.
type Config struct {
	// OpenAPIVersion is written to Document.OpenAPI.
	OpenAPIVersion string
	// DefaultInfoTitle and DefaultInfoVersion fill an Info that declares none.
	DefaultInfoTitle   string
	DefaultInfoVersion string
	// DefaultServerURL is used when the document declares no servers.
	DefaultServerURL string
	// DefaultMediaType is used for content declared without a media type
	// when the endpoint declares no produces/consumes either.
	DefaultMediaType string
	// SchemaNaming selects how type-scope schemas without a name are named.
	SchemaNaming naming.Strategy
	// SchemaNameTemplate, when set, overrides SchemaNaming.
	SchemaNameTemplate string
	// DeduplicateEquivalent collapses structurally equal complete
	// declarations of one name instead of reporting a duplicate definition.
	DeduplicateEquivalent bool
	// Logger receives phase progress and diagnostics.
	Logger Logger
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() *Config {
	return &Config{
		OpenAPIVersion:     DefaultOpenAPIVersion,
		DefaultInfoTitle:   DefaultInfoTitle,
		DefaultInfoVersion: DefaultInfoVersion,
		DefaultServerURL:   "/",
		DefaultMediaType:   DefaultMediaType,
		SchemaNaming:       naming.TypeOnly,
		Logger:             NopLogger{},
	}
}

// WithConfig replaces the whole configuration. Zero-valued fields fall back
// to their defaults.
func WithConfig(c Config) Option {
	return func(cfg *Config) error {
		def := DefaultConfig()
		if c.OpenAPIVersion == "" {
			c.OpenAPIVersion = def.OpenAPIVersion
		}
		if c.DefaultInfoTitle == "" {
			c.DefaultInfoTitle = def.DefaultInfoTitle
		}
		if c.DefaultInfoVersion == "" {
			c.DefaultInfoVersion = def.DefaultInfoVersion
		}
		if c.DefaultServerURL == "" {
			c.DefaultServerURL = def.DefaultServerURL
		}
		if c.DefaultMediaType == "" {
			c.DefaultMediaType = def.DefaultMediaType
		}
		if c.Logger == nil {
			c.Logger = def.Logger
		}
		*cfg = c
		return nil
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(cfg *Config) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.Logger = l
		return nil
	}
}

// WithOpenAPIVersion sets the "openapi" field of the document. Only 3.x
// versions are accepted.
func WithOpenAPIVersion(v string) Option {
	return func(cfg *Config) error {
		v = strings.TrimSpace(v)
		if !strings.HasPrefix(v, "3.") {
			return &oaserrors.ConfigError{Option: "OpenAPIVersion", Value: v, Message: "must be an OpenAPI 3.x version"}
		}
		cfg.OpenAPIVersion = v
		return nil
	}
}

// WithDefaultInfo sets the title and version used when no Info is declared.
func WithDefaultInfo(title, version string) Option {
	return func(cfg *Config) error {
		if strings.TrimSpace(title) == "" || strings.TrimSpace(version) == "" {
			return &oaserrors.ConfigError{Option: "DefaultInfo", Value: title + "/" + version, Message: "title and version are required"}
		}
		cfg.DefaultInfoTitle = title
		cfg.DefaultInfoVersion = version
		return nil
	}
}

// WithDefaultServerURL sets the server URL used when none is declared.
func WithDefaultServerURL(url string) Option {
	return func(cfg *Config) error {
		if strings.TrimSpace(url) == "" {
			return &oaserrors.ConfigError{Option: "DefaultServerURL", Message: "must not be empty"}
		}
		cfg.DefaultServerURL = url
		return nil
	}
}

// WithDefaultMediaType sets the media type for content declared without one.
func WithDefaultMediaType(mediaType string) Option {
	return func(cfg *Config) error {
		if !strings.Contains(mediaType, "/") {
			return &oaserrors.ConfigError{Option: "DefaultMediaType", Value: mediaType, Message: "must be a type/subtype media range"}
		}
		cfg.DefaultMediaType = mediaType
		return nil
	}
}

// WithSchemaNaming sets the naming strategy for unnamed type-scope schemas.
func WithSchemaNaming(s naming.Strategy) Option {
	return func(cfg *Config) error {
		if s < naming.TypeOnly || s > naming.KebabCase {
			return &oaserrors.ConfigError{Option: "SchemaNaming", Value: int(s), Message: "unknown naming strategy"}
		}
		cfg.SchemaNaming = s
		return nil
	}
}

// WithSchemaNameTemplate names unnamed type-scope schemas with a
// text/template. The template sees .Package and .Type and the functions
// pascal, camel, snake, kebab, upper, lower, title, sanitize, trimPrefix,
// trimSuffix and replace.
//
// Example: "{{pascal .Package}}{{.Type}}"
func WithSchemaNameTemplate(tmpl string) Option {
	return func(cfg *Config) error {
		if _, err := naming.NewNamer(cfg.SchemaNaming).WithTemplate(tmpl); err != nil {
			return &oaserrors.ConfigError{Option: "SchemaNameTemplate", Value: tmpl, Cause: err}
		}
		cfg.SchemaNameTemplate = tmpl
		return nil
	}
}

// WithDeduplicateEquivalent collapses structurally equal complete
// declarations sharing a name instead of reporting DuplicateDefinitionError.
func WithDeduplicateEquivalent(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.DeduplicateEquivalent = enabled
		return nil
	}
}

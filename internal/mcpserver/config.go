package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/oasresolve/internal/naming"
	"github.com/erraggy/oasresolve/internal/severity"
	"github.com/erraggy/oasresolve/resolver"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Listing defaults.
	ListLimit int
	MaxLimit  int

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Resolver defaults.
	OpenAPIVersion   string
	DefaultMediaType string
	SchemaNaming     string
	Deduplicate      bool
	MinSeverity      string

	// Scan defaults.
	ScanTests bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASRESOLVE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASRESOLVE_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASRESOLVE_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASRESOLVE_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("OASRESOLVE_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("OASRESOLVE_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASRESOLVE_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ListLimit:          envInt("OASRESOLVE_LIST_LIMIT", 100),
		MaxLimit:           envInt("OASRESOLVE_MAX_LIMIT", 1000),
		MaxInlineSize:      envInt64("OASRESOLVE_MAX_INLINE_SIZE", 10*1024*1024),
		AllowPrivateIPs:    envBool("OASRESOLVE_ALLOW_PRIVATE_IPS", false),
		OpenAPIVersion:     envString("OASRESOLVE_OPENAPI_VERSION", resolver.DefaultOpenAPIVersion),
		DefaultMediaType:   envString("OASRESOLVE_DEFAULT_MEDIA_TYPE", resolver.DefaultMediaType),
		SchemaNaming:       envNaming("OASRESOLVE_SCHEMA_NAMING"),
		Deduplicate:        envBool("OASRESOLVE_DEDUPLICATE", false),
		MinSeverity:        envSeverity("OASRESOLVE_MIN_SEVERITY"),
		ScanTests:          envBool("OASRESOLVE_SCAN_TESTS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envNaming returns a valid naming strategy name, or "" for the resolver
// default.
func envNaming(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if _, err := naming.ParseStrategy(v); err != nil {
		slog.Warn("invalid naming strategy env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return v
}

// envSeverity returns a valid severity name, defaulting to "info".
func envSeverity(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return severity.SeverityInfo.String()
	}
	s, err := severity.Parse(v)
	if err != nil {
		slog.Warn("invalid severity env var, using default", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return severity.SeverityInfo.String()
	}
	return s.String()
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

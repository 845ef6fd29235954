package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/internal/options"
)

// declInput represents the three ways a declaration file can be provided to
// a tool. Exactly one of File, URL, or Content must be set.
type declInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a declaration file (YAML or JSON) on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a declaration file from"`
	Content string `json:"content,omitempty" jsonschema:"Inline declaration file content (YAML or JSON)"`
}

// cacheEntry holds a loaded declaration set with LRU ordering and TTL expiry.
type cacheEntry struct {
	set       decl.Set
	insertAt  time.Time
	expiresAt time.Time
}

// declCacheStore provides a session-scoped cache for loaded declaration sets.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. URL inputs are keyed by URL string.
// Entries have per-type TTLs and a background sweeper removes expired entries.
// Cached sets are shared between calls; the resolver never mutates its input.
type declCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var declCache = &declCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached set and whether it was found. Expired entries are
// lazily removed.
func (c *declCacheStore) get(key string) (decl.Set, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil, false
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.set, true
	}
	return nil, false
}

// putWithTTL stores a set with a specific TTL, evicting the oldest entry if at capacity.
func (c *declCacheStore) putWithTTL(key string, set decl.Set, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{set: set, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *declCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *declCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *declCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *declCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input, or "" when the
// input cannot be cached.
func makeCacheKey(in declInput) string {
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return fmt.Sprintf("content:%s", hex.EncodeToString(h[:]))
	case in.URL != "":
		return fmt.Sprintf("url:%s", in.URL)
	default:
		return ""
	}
}

// load decodes the declaration set from whichever input was provided, using
// the cache for file, URL, and content inputs.
func (in declInput) load(ctx context.Context) (decl.Set, error) {
	if err := options.ValidateSingleInputSource(
		options.Source{Name: "file", Set: in.File != ""},
		options.Source{Name: "url", Set: in.URL != ""},
		options.Source{Name: "content", Set: in.Content != ""},
	); err != nil {
		return nil, err
	}

	if in.Content != "" && int64(len(in.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASRESOLVE_MAX_INLINE_SIZE to increase",
			len(in.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(in)
		switch {
		case in.File != "":
			ttl = cfg.CacheFileTTL
		case in.URL != "":
			ttl = cfg.CacheURLTTL
		default:
			ttl = cfg.CacheContentTTL
		}
	}
	if key != "" {
		if set, ok := declCache.get(key); ok {
			return set, nil
		}
	}

	var (
		set decl.Set
		err error
	)
	switch {
	case in.File != "":
		set, err = decl.LoadFile(in.File)
	case in.URL != "":
		var data []byte
		data, err = fetch(ctx, httpClient(), in.URL, cfg.MaxInlineSize)
		if err == nil {
			set, err = decl.LoadBytes(filepath.Base(in.URL), data)
		}
	default:
		set, err = decl.LoadBytes("content", []byte(in.Content))
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		declCache.putWithTTL(key, set, ttl)
	}
	return set, nil
}

package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"uscl/internal/token"
)

// Current schema version - increment when cachePayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores scanned token streams on disk keyed by the sha256 hash
// of the file content, so unchanged files skip rescanning.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Tokens []token.Token
}

// OpenTokenCache initializes a cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app))
}

// NewTokenCache initializes a cache rooted at dir.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// "tokens" subdirectory keeps the cache dir scannable by hand.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a token stream. The write goes through a temp
// file and rename so readers never observe a partial payload.
func (c *TokenCache) Put(key [32]byte, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		_ = f.Close()
		_ = os.Remove(tmpName)
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(cachePayload{Schema: tokenCacheSchemaVersion, Tokens: tokens}); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get loads a token stream, or ok=false on miss, schema mismatch, or decode
// failure. Corrupt entries count as misses; callers rescan and overwrite.
func (c *TokenCache) Get(key [32]byte) (tokens []token.Token, ok bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Missing and unreadable entries are both misses.
	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false
	}
	return payload.Tokens, true
}

// Clear removes every cached token stream.
func (c *TokenCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := filepath.Join(c.dir, "tokens")
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear token cache: %w", err)
	}
	return nil
}

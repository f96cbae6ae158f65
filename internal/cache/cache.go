// Package cache stores transpiled units on disk keyed by the source
// content hash, so unchanged files skip the front end and the
// translator entirely on rebuild.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion invalidates every stored payload when the payload
// format or the emitted-code shape changes.
const schemaVersion uint16 = 1

// Digest is a SHA-256 content hash, the cache key.
type Digest = [32]byte

// Payload is one cached transpilation result.
type Payload struct {
	Schema uint16

	// Source identity, for diagnostics and sanity checks.
	SourcePath string
	SourceHash Digest

	// JS is the translated fragment text, without the runtime
	// preamble; assembly adds that once per program.
	JS string

	// CreatedAt is informational only; eviction is manual (DropAll).
	CreatedAt int64
}

// Cache is a disk-backed payload store. The zero value is unusable;
// call Open. A nil *Cache is a valid no-op cache, so callers can thread
// one through unconditionally.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes the cache directory under XDG_CACHE_HOME (or
// ~/.cache) for the given application name.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenAt(filepath.Join(base, app))
}

// OpenAt initializes a cache rooted at an explicit directory.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a payload and writes it atomically (temp file plus
// rename) so concurrent readers never see a torn entry.
func (c *Cache) Put(key Digest, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads a payload. The second return is false on a miss, which
// includes entries written by an older schema.
func (c *Cache) Get(key Digest) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll discards every entry, for --no-cache rebuilds and schema
// migrations. The directory is renamed first so a concurrent writer
// cannot repopulate it mid-removal.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

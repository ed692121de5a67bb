// Package cache stores the binary-encoded outline of a project so later
// invocations can skip JSON parsing. The cache lives in a per-project
// directory next to elm.json and is invalidated by comparing file
// modification times against the manifest.
//
// Cached data is trusted: it is only ever read back by the program that
// wrote it. A cache file that fails to decode is corruption, and decoding
// panics rather than returning an error (see outline.DecodeBinary). Callers
// that want to recover should Clear the cache, not catch the panic.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elmkit/elmkit/internal/config"
	"github.com/elmkit/elmkit/internal/outline"
)

const fileName = "outline.dat"

// Cache manages the binary outline cache of one project root.
type Cache struct {
	root string
	dir  string
}

// New returns a Cache for the project at root. The cache directory name
// comes from configuration (default "elm-stuff").
func New(root string) *Cache {
	return &Cache{
		root: root,
		dir:  filepath.Join(root, config.CacheDir()),
	}
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return filepath.Join(c.dir, fileName)
}

// Store encodes o and writes it to the cache file, creating the cache
// directory if needed.
func (c *Cache) Store(o outline.Outline) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", c.dir, err)
	}
	if err := os.WriteFile(c.Path(), outline.EncodeBinary(o), 0644); err != nil {
		return fmt.Errorf("writing outline cache: %w", err)
	}
	return nil
}

// Load reads the cached outline. The second return is false on a miss: no
// cache file, or a cache file older than the manifest. Corrupt cache data
// panics.
func (c *Cache) Load() (outline.Outline, bool, error) {
	stale, err := c.Stale()
	if err != nil {
		return nil, false, err
	}
	if stale {
		return nil, false, nil
	}
	data, err := os.ReadFile(c.Path())
	if err != nil {
		return nil, false, fmt.Errorf("reading outline cache: %w", err)
	}
	return outline.DecodeBinary(data), true, nil
}

// Stale reports whether the cache is absent or older than the manifest.
func (c *Cache) Stale() (bool, error) {
	cacheInfo, err := os.Stat(c.Path())
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking outline cache: %w", err)
	}
	manifestInfo, err := os.Stat(outline.Path(c.root))
	if err != nil {
		return false, fmt.Errorf("checking manifest: %w", err)
	}
	return cacheInfo.ModTime().Before(manifestInfo.ModTime()), nil
}

// Clear removes the cache file. Clearing an absent cache is not an error.
func (c *Cache) Clear() error {
	err := os.Remove(c.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing outline cache: %w", err)
	}
	return nil
}

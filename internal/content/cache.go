// Package content implements a per-root byte cache: read a file's
// contents once, keyed by filename, and memoize the result. Lookups check
// under a read lock first and fall back to a write-locked slow path that
// stores the content exactly once.
package content

import (
	"os"
	"sync"

	"github.com/oxhq/astmatch/internal/ast"
)

// Cache maps a filename to its immutable byte buffer. It is scoped to a
// single root node and populated lazily on first GetContent call for a
// file. A cache can also be pre-seeded at construction time, which is how
// in-memory patterns and load-from-text roots avoid ever touching the
// filesystem.
type Cache struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{data: make(map[string][]byte)}
}

// Seed pre-populates the cache for filename with content, used by
// LoadFromText-style constructors so GetContent never hits the
// filesystem for in-memory sources.
func (c *Cache) Seed(filename string, content []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[filename] = content
}

// GetContent returns the decoded UTF-8 substring of filename's bytes over
// [start, end). On first access for a filename not already seeded, the
// whole file is read and memoized.
func (c *Cache) GetContent(filename string, start, end int) (string, error) {
	buf, err := c.getBytes(filename)
	if err != nil {
		return "", err
	}
	if start < 0 || end > len(buf) || start > end {
		return "", ast.Wrap(ast.ErrIO, "byte range out of bounds for "+filename, nil)
	}
	return string(buf[start:end]), nil
}

func (c *Cache) getBytes(filename string) ([]byte, error) {
	c.mu.RLock()
	if buf, ok := c.data[filename]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if buf, ok := c.data[filename]; ok {
		return buf, nil
	}
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, ast.Wrap(ast.ErrIO, "reading "+filename, err)
	}
	c.data[filename] = buf
	return buf, nil
}

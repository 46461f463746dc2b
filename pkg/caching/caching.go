package caching

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cache provides a simple file-based cache with a TTL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// Key derives a cache key from its parts. The parts are hashed so any
// content (including whole documents) can be used.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return fmt.Sprintf("%x", hash)
}

// Get retrieves an item from the cache.
// It returns the data and true if the item is found and not expired.
// Otherwise, it returns nil and false.
func (c *Cache) Get(key string) ([]byte, bool) {
	filePath := filepath.Join(c.path, key)

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false // Cache miss
	}

	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false // Cache miss (read error)
	}

	return data, true
}

// Set adds an item to the cache.
func (c *Cache) Set(key string, data []byte) error {
	filePath := filepath.Join(c.path, key)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// GetTokens returns a cached token sequence.
func (c *Cache) GetTokens(key string) ([]string, bool) {
	data, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, false // Corrupt entry, treat as a miss
	}
	return tokens, true
}

// SetTokens stores a token sequence under key.
func (c *Cache) SetTokens(key string, tokens []string) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}
	return c.Set(key, data)
}

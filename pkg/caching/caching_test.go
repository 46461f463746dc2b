package caching

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_TokensRoundTrip(t *testing.T) {
	c, err := NewCache(filepath.Join(t.TempDir(), "cache"), time.Hour)
	require.NoError(t, err)

	key := Key("contenido", "spanish")
	_, ok := c.GetTokens(key)
	assert.False(t, ok)

	require.NoError(t, c.SetTokens(key, []string{"paz", "nación"}))

	got, ok := c.GetTokens(key)
	require.True(t, ok)
	assert.Equal(t, []string{"paz", "nación"}, got)
}

func TestCache_Expired(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir, time.Minute)
	require.NoError(t, err)

	key := Key("x")
	require.NoError(t, c.Set(key, []byte(`["a"]`)))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, key), old, old))

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	c, err := NewCache(t.TempDir(), 0)
	require.NoError(t, err)

	key := Key("broken")
	require.NoError(t, c.Set(key, []byte("not json")))

	_, ok := c.GetTokens(key)
	assert.False(t, ok)
}

func TestKey_DistinguishesParts(t *testing.T) {
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
}

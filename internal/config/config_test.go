package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WORDLE_CACHE_DIR", "")
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WORDLE_API_BASE", "")
	t.Setenv("WORDLE_DICTIONARY_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.CacheBackend)
	assert.Equal(t, 5, cfg.MaxTries)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "wordle-go", filepath.Base(cfg.CacheDir))
	assert.Equal(t, daily.DefaultBaseURL, cfg.APIBase)
	assert.Equal(t, words.DefaultURL, cfg.DictionaryURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORDLE_CACHE_DIR", dir)
	t.Setenv("WORDLE_CACHE_BACKEND", "sqlite")
	t.Setenv("WORDLE_MAX_TRIES", "6")
	t.Setenv("WORDLE_STRICT", "true")
	t.Setenv("WORDLE_HTTP_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.CacheDir)
	assert.Equal(t, "sqlite", cfg.CacheBackend)
	assert.Equal(t, 6, cfg.MaxTries)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("WORDLE_CACHE_DIR", t.TempDir())

	t.Run("zero tries", func(t *testing.T) {
		t.Setenv("WORDLE_MAX_TRIES", "0")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("WORDLE_MAX_TRIES", "five")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestApplyLogLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	(&Config{LogLevel: "debug"}).ApplyLogLevel()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	(&Config{LogLevel: "bogus"}).ApplyLogLevel()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

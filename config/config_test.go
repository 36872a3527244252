package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PAGESPLIT_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxTokensPerSection)
	assert.Equal(t, 1000, cfg.MaxSectionLength)
	assert.Equal(t, 100, cfg.SentenceSearchLimit)
	assert.Equal(t, 10, cfg.OverlapPercent)
	assert.Equal(t, 1000, cfg.MaxObjectLength)
	assert.Equal(t, "", cfg.Encoding)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PAGESPLIT_CONFIG", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("PAGESPLIT_MAX_TOKENS", "250")
	t.Setenv("PAGESPLIT_OVERLAP_PERCENT", "20")
	t.Setenv("PAGESPLIT_ENCODING", "cl100k_base")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.MaxTokensPerSection)
	assert.Equal(t, 20, cfg.OverlapPercent)
	assert.Equal(t, "cl100k_base", cfg.Encoding)
}

func TestLoadConfigBadEnvValue(t *testing.T) {
	t.Setenv("PAGESPLIT_MAX_TOKENS", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfigSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	saved := &Config{
		MaxTokensPerSection: 300,
		MaxSectionLength:    800,
		SentenceSearchLimit: 50,
		OverlapPercent:      15,
		MaxObjectLength:     2000,
		Encoding:            "cl100k_base",
		LogLevel:            "DEBUG",
	}
	require.NoError(t, saved.Save(path))

	t.Setenv("PAGESPLIT_CONFIG", path)
	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLoadConfig_Defaults tests that tag defaults reach the unmarshalled struct.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "embedded", cfg.Vector.Mode)
	assert.Equal(t, "docs", cfg.Vector.Collection)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.False(t, cfg.Image.Enabled)
	assert.False(t, cfg.Image.LogPrompts)
	assert.Equal(t, "openai", cfg.Image.Provider)
	assert.Equal(t, 1000, cfg.Ingest.MaxChars)
	assert.Equal(t, "pack", cfg.Ingest.Chunker)
}

// TestLoadConfig_EnvOverride tests nested key overrides via SERVER_PORT style vars.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("VECTOR_MODE", "qdrant")
	t.Setenv("LLM_API_KEY", "sk-structured")
	t.Setenv("IMAGE_ENABLED", "true")
	t.Setenv("INGEST_MAX_CHARS", "500")

	cfg, err := LoadConfig(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "qdrant", cfg.Vector.Mode)
	assert.Equal(t, "sk-structured", cfg.LLM.APIKey)
	assert.True(t, cfg.Image.Enabled)
	assert.Equal(t, 500, cfg.Ingest.MaxChars)
}

// TestLoadConfig_LegacyEnv tests the flat variable names earlier deployments used.
func TestLoadConfig_LegacyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-legacy")
	t.Setenv("COLLECTION_NAME", "handbook")
	t.Setenv("QDRANT_URL", "http://qdrant:6333")
	t.Setenv("IMAGE_PROVIDER", "stability")
	t.Setenv("LOG_IMAGE_PROMPTS", "yes")

	cfg, err := LoadConfig(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, "sk-legacy", cfg.LLM.APIKey)
	assert.Equal(t, "handbook", cfg.Vector.Collection)
	assert.Equal(t, "http://qdrant:6333", cfg.Vector.URL)
	assert.Equal(t, "stability", cfg.Image.Provider)
	assert.True(t, cfg.Image.LogPrompts)
}

// TestLoadConfig_LegacyWinsOverStructured tests precedence when both forms are set.
func TestLoadConfig_LegacyWinsOverStructured(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-structured")
	t.Setenv("OPENAI_API_KEY", "sk-legacy")

	cfg, err := LoadConfig(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, "sk-legacy", cfg.LLM.APIKey)
}

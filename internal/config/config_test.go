package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PERMIT_SOURCE", "")
	t.Setenv("SUGGEST_RATE_LIMIT", "not-a-number")

	cfg := LoadConfig()
	cfg.PermitSource = SourceMemory

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "vergunningen", cfg.TypesenseCollection)
	assert.Equal(t, 0.7, cfg.AIMinConfidence)
	assert.Equal(t, 0.0, cfg.SuggestRateLimit)
	assert.Equal(t, 2*time.Minute, cfg.SearchCacheTTL())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PERMIT_SOURCE", "Typesense")
	t.Setenv("TYPESENSE_API_KEY", "xyz")
	t.Setenv("VOCABULARY_STRICT", "true")
	t.Setenv("SEARCH_CACHE_TTL_SECONDS", "30")
	t.Setenv("ENABLE_AI_ANALYSIS", "1")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg := LoadConfig()
	assert.Equal(t, SourceTypesense, cfg.PermitSource)
	assert.True(t, cfg.VocabularyStrict)
	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, 30*time.Second, cfg.SearchCacheTTL())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{PermitSource: SourceMemory, AIMinConfidence: 0.7, LogFormat: "json"}
	}

	cfg := base()
	cfg.PermitSource = "postgres"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPermitSource)

	cfg = base()
	cfg.PermitSource = SourceTypesense
	assert.ErrorIs(t, cfg.Validate(), ErrMissingTypesenseKey)

	cfg = base()
	cfg.AIMinConfidence = 1.5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfidence)

	cfg = base()
	cfg.LogFormat = "xml"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLogFormat)

	cfg = base()
	cfg.EnableAIAnalysis = true
	assert.False(t, cfg.AIEnabled())
}

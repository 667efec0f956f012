package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madboat/madboat/internal/llm"
)

func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearVendorKeys(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 40.0, cfg.RefineThreshold)
	assert.True(t, cfg.RefineEnabled)
	assert.Equal(t, 4, cfg.BatchWorkers)
	assert.Equal(t, llm.ProviderNone, cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("MADBOAT_DB", "/tmp/x.db")
	t.Setenv("MADBOAT_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("MADBOAT_REFINE_THRESHOLD", "55.5")
	t.Setenv("MADBOAT_BATCH_WORKERS", "0")
	t.Setenv("MADBOAT_LLM_PROVIDER", "mock")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 55.5, cfg.RefineThreshold)
	assert.Equal(t, 1, cfg.BatchWorkers)
	assert.Equal(t, llm.ProviderMock, cfg.LLM.Provider)
}

func TestLoadErrors(t *testing.T) {
	clearVendorKeys(t)

	t.Setenv("MADBOAT_REFINE_THRESHOLD", "150")
	_, err := Load()
	assert.ErrorContains(t, err, "MADBOAT_REFINE_THRESHOLD")

	t.Setenv("MADBOAT_REFINE_THRESHOLD", "abc")
	_, err = Load()
	assert.ErrorContains(t, err, "parse env")
}

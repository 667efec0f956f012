package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderNone, cfg.Provider)
	assert.False(t, cfg.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MADBOAT_LLM_PROVIDER", "openai")
	t.Setenv("MADBOAT_OPENAI_API_KEY", "sk-test")
	t.Setenv("MADBOAT_OPENAI_BASE_URL", "https://openrouter.ai/api/v1")
	t.Setenv("MADBOAT_LLM_TIMEOUT", "5s")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderAnthropic
	assert.ErrorContains(t, cfg.Validate(), "MADBOAT_ANTHROPIC_API_KEY")

	cfg.Provider = "bard"
	assert.ErrorContains(t, cfg.Validate(), "unknown")
}

func TestDiscover(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := DefaultConfig()
	require.True(t, cfg.Discover())
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)

	explicit := DefaultConfig()
	explicit.Provider = ProviderMock
	assert.True(t, explicit.Discover())
	assert.Equal(t, ProviderMock, explicit.Provider)
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, ErrDisabled)

	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

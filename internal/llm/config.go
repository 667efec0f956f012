package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderMock      = "mock"
	ProviderNone      = "none"
)

// Config selects and configures a provider. Fields are read from MADBOAT_*
// environment variables.
type Config struct {
	Provider string `env:"MADBOAT_LLM_PROVIDER" envDefault:"none"`

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration `env:"MADBOAT_LLM_TIMEOUT" envDefault:"30s"`
}

type AnthropicConfig struct {
	APIKey  string `env:"MADBOAT_ANTHROPIC_API_KEY"`
	Model   string `env:"MADBOAT_ANTHROPIC_MODEL" envDefault:"claude-haiku"`
	BaseURL string `env:"MADBOAT_ANTHROPIC_BASE_URL"`
}

// OpenAIConfig also serves OpenRouter and other compatible APIs through
// BaseURL.
type OpenAIConfig struct {
	APIKey  string `env:"MADBOAT_OPENAI_API_KEY"`
	Model   string `env:"MADBOAT_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"MADBOAT_OPENAI_BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `env:"MADBOAT_GEMINI_API_KEY"`
	Model  string `env:"MADBOAT_GEMINI_MODEL" envDefault:"gemini-flash"`
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"MADBOAT_LLM_RETRY_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"MADBOAT_LLM_RETRY_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"MADBOAT_LLM_RETRY_MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"MADBOAT_LLM_RETRY_MULTIPLIER" envDefault:"2"`
}

// DefaultConfig returns the envDefault values without reading the
// environment.
func DefaultConfig() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("llm: default config: %v", err))
	}
	return cfg
}

// ConfigFromEnv reads the configuration from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse llm env: %w", err)
	}
	return cfg, nil
}

// Discover fills in a provider from the vendors' standard key variables
// when none was chosen explicitly. It reports whether a provider is set.
func (c *Config) Discover() bool {
	if c.Enabled() {
		return true
	}
	switch {
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		c.Provider = ProviderAnthropic
		c.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		c.Provider = ProviderOpenAI
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("GEMINI_API_KEY") != "":
		c.Provider = ProviderGemini
		c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		return false
	}
	return true
}

// Enabled reports whether a provider was selected.
func (c Config) Enabled() bool {
	return c.Provider != "" && c.Provider != ProviderNone
}

// Validate checks that the selected provider has a key.
func (c Config) Validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%s is required for the %s provider", name, c.Provider)
	}
	switch c.Provider {
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing("MADBOAT_ANTHROPIC_API_KEY")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing("MADBOAT_OPENAI_API_KEY")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing("MADBOAT_GEMINI_API_KEY")
		}
	case ProviderMock, ProviderNone, "":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrDisabled is returned by NewProvider when no provider is configured.
var ErrDisabled = errors.New("llm provider disabled")

// NewProvider builds the configured provider wrapped as
// timeout → retry → recording → provider. rec may be nil.
func NewProvider(ctx context.Context, cfg Config, rec RequestRecorder, logger *zap.Logger) (Provider, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = newAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = newOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = newGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}
	return Wrap(base, cfg, rec, logger), nil
}

// Wrap applies the standard middleware stack to an existing provider.
func Wrap(p Provider, cfg Config, rec RequestRecorder, logger *zap.Logger) Provider {
	p = WithRecording(p, cfg.Provider, rec, logger)
	p = WithRetry(p, cfg.Retry, logger)
	return WithTimeout(p, cfg.Timeout)
}

package llm

import (
	"context"
	"fmt"

	"github.com/tanmayb/wordgym/internal/store"
)

// NewProvider assembles the configured backend behind the retry and
// event-logging layers. Callers see retries as a single Generate call;
// the logging layer under it records every individual attempt.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	base, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return base, nil
	}
	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

func newBackend(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	}
	return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
}

// NewProviderFromEnv reads WORDGYM_* variables, falling back to the
// conventional API key variables, and builds the provider stack.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, found := DiscoverConfig()
		if !found {
			return nil, fmt.Errorf("no LLM provider configured: set WORDGYM_LLM_PROVIDER or an API key env var")
		}
		cfg = discovered
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, events)
}

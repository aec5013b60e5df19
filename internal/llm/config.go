package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL points the client at an OpenAI-compatible server when set.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig shapes the backoff schedule for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks Anthropic with the cheap model and a modest retry
// schedule.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers WORDGYM_* environment variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	env(&cfg.Provider, "WORDGYM_LLM_PROVIDER")
	env(&cfg.Anthropic.APIKey, "WORDGYM_ANTHROPIC_API_KEY")
	env(&cfg.Anthropic.Model, "WORDGYM_ANTHROPIC_MODEL")
	env(&cfg.OpenAI.APIKey, "WORDGYM_OPENAI_API_KEY")
	env(&cfg.OpenAI.Model, "WORDGYM_OPENAI_MODEL")
	env(&cfg.OpenAI.BaseURL, "WORDGYM_OPENAI_BASE_URL")
	env(&cfg.Gemini.APIKey, "WORDGYM_GEMINI_API_KEY")
	env(&cfg.Gemini.Model, "WORDGYM_GEMINI_MODEL")

	return cfg
}

func env(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig falls back to the conventional API key variables when
// no WORDGYM_* provider is configured. Probe order: Gemini, OpenAI,
// Anthropic. The second return is false when no key is set at all.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, cand := range []struct {
		envVar   string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
	} {
		if k := os.Getenv(cand.envVar); k != "" {
			cfg.Provider = cand.provider
			*cand.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate confirms the chosen provider has the credentials it needs.
func (c Config) Validate() error {
	required := map[string]string{
		"anthropic": c.Anthropic.APIKey,
		"openai":    c.OpenAI.APIKey,
		"gemini":    c.Gemini.APIKey,
	}
	key, known := required[c.Provider]
	if !known {
		if c.Provider == "mock" {
			return nil
		}
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("no API key configured for the %s provider", c.Provider)
	}
	return nil
}

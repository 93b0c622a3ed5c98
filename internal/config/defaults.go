package config

import "github.com/rosterize/rosterize/internal/providers"

// Config is the full rosterize configuration.
type Config struct {
	LLMProviders map[string]providers.LLMProviderConfig `mapstructure:"llm_providers" yaml:"llm_providers"`
	Defaults     Defaults                               `mapstructure:"defaults" yaml:"defaults"`
}

// Defaults holds run-level knobs.
type Defaults struct {
	Provider    string  `mapstructure:"provider" yaml:"provider"`         // registry name of the client to use
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`   // completion temperature
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`     // completion token cap
	BatchSize   int     `mapstructure:"batch_size" yaml:"batch_size"`     // progress-grouping size
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		LLMProviders: map[string]providers.LLMProviderConfig{
			"openrouter": {
				Type:      "openrouter",
				Model:     "anthropic/claude-3.5-sonnet",
				APIKey:    "${OPENROUTER_API_KEY}",
				RateLimit: 2.0,
				Enabled:   true,
			},
			"openai": {
				Type:      "openai",
				Model:     "gpt-4o-mini",
				APIKey:    "${OPENAI_API_KEY}",
				RateLimit: 2.0,
				Enabled:   false,
			},
		},
		Defaults: Defaults{
			Provider:    "openrouter",
			Temperature: 0,
			MaxTokens:   512,
			BatchSize:   1,
		},
	}
}

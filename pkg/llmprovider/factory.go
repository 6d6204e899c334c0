package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"relationship-os/config"
	"relationship-os/pkg/deepseek"
	"relationship-os/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Filter enabled providers
	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Sort by priority (ascending order)
	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	// Build provider instances - skip failed ones instead of failing entirely
	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	// If no providers were successfully initialized, return error
	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider builds a single Provider from its config entry.
func createProvider(p config.ProviderConfig) (Provider, error) {
	switch strings.ToLower(p.Name) {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: p.APIKey,
			Model:  p.Model,
			APIURL: p.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  p.APIKey,
			Model:   p.Model,
			BaseURL: p.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", p.Name)
	}
}

// NewConfigFromLLM builds a Manager Config from config.LLMConfig, parsing
// the duration strings with sane fallbacks.
func NewConfigFromLLM(cfg *config.LLMConfig) *Config {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      time.Second,
		MaxTotalTimeout: 60 * time.Second,
	}
	if out.RetryAttempts <= 0 {
		out.RetryAttempts = 1
	}
	if d, err := time.ParseDuration(cfg.RetryDelay); err == nil && d > 0 {
		out.RetryDelay = d
	}
	if d, err := time.ParseDuration(cfg.MaxTotalTimeout); err == nil && d > 0 {
		out.MaxTotalTimeout = d
	}
	return out
}

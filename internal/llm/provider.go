package llm

import "fmt"

type ProviderConfig struct {
	Provider string   // openrouter, anthropic
	APIKey   string
	Models   []string // fallback chain, primary first
	BaseURL  string
}

func NewClient(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "openrouter", "":
		return NewOpenRouterClient(cfg.APIKey, cfg.BaseURL, cfg.Models), nil
	case "anthropic":
		return NewAnthropicClient(cfg.APIKey, cfg.Models), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}

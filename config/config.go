package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Credentials and model identifiers are never compiled in; everything comes
// from the environment (or a local .env during development).
type Config struct {
	LLMProvider   string   // openrouter, anthropic
	OpenRouterKey string
	AnthropicKey  string
	BaseURL       string   // override for the OpenAI-compatible endpoint
	Models        []string // fallback chain, primary first
	DiscordToken  string
	DataDir       string
	BackupCron    string // empty disables backups
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		LLMProvider:   envOr("LLM_PROVIDER", "openrouter"),
		OpenRouterKey: os.Getenv("OPENROUTER_API_KEY"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		BaseURL:       os.Getenv("OPENROUTER_BASE_URL"),
		Models:        SplitModels(envOr("LLM_MODELS", "nvidia/nemotron-nano-9b-v2:free,gpt-3.5-turbo")),
		DiscordToken:  os.Getenv("DISCORD_BOT_TOKEN"),
		DataDir:       envOr("DATA_DIR", "./data"),
		BackupCron:    os.Getenv("BACKUP_CRON"),
	}
}

// APIKey returns the credential matching the selected provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "anthropic" {
		return c.AnthropicKey
	}
	return c.OpenRouterKey
}

// SplitModels parses a comma-separated model list, dropping empty entries.
func SplitModels(s string) []string {
	var models []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	return models
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

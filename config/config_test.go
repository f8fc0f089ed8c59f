package config

import (
	"reflect"
	"testing"
)

func TestSplitModels(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b,", []string{"a", "b"}},
		{"nvidia/nemotron-nano-9b-v2:free,gpt-3.5-turbo", []string{"nvidia/nemotron-nano-9b-v2:free", "gpt-3.5-turbo"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tc := range cases {
		if got := SplitModels(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitModels(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODELS", "")
	t.Setenv("DATA_DIR", "")

	cfg := Load()
	if cfg.LLMProvider != "openrouter" {
		t.Errorf("expected default provider openrouter, got %q", cfg.LLMProvider)
	}
	if len(cfg.Models) != 2 || cfg.Models[0] != "nvidia/nemotron-nano-9b-v2:free" {
		t.Errorf("unexpected default model chain: %v", cfg.Models)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_MODELS", "claude-sonnet-4-5, claude-haiku-4-5")
	t.Setenv("ANTHROPIC_API_KEY", "anth-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")

	cfg := Load()
	if cfg.LLMProvider != "anthropic" {
		t.Errorf("expected provider anthropic, got %q", cfg.LLMProvider)
	}
	if want := []string{"claude-sonnet-4-5", "claude-haiku-4-5"}; !reflect.DeepEqual(cfg.Models, want) {
		t.Errorf("expected models %v, got %v", want, cfg.Models)
	}
	if cfg.APIKey() != "anth-key" {
		t.Errorf("expected the anthropic key for the anthropic provider, got %q", cfg.APIKey())
	}

	cfg.LLMProvider = "openrouter"
	if cfg.APIKey() != "or-key" {
		t.Errorf("expected the openrouter key for the openrouter provider, got %q", cfg.APIKey())
	}
}

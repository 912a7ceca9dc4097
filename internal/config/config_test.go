package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	envs := []string{
		"HOST",
		"PORT",
		"PRESET",
		"DEFAULT_MODEL",
		"BASE_DELAY_MS",
		"JITTER_MS",
		"PER_TOKEN_DELAY_MS",
		"ERROR_RATE",
		"ERROR_MODE",
		"TTFT_MIN_MS",
		"TTFT_MAX_MS",
		"TOKENS_PER_SEC",
	}
	for _, k := range envs {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != 8000 {
		t.Fatalf("unexpected listen defaults: %+v", cfg)
	}
	if cfg.Preset != "none" || cfg.DefaultModel != "mock-model" {
		t.Fatalf("unexpected preset/model defaults: %+v", cfg)
	}
	if cfg.BaseDelayMs != 0 || cfg.JitterMs != 0 || cfg.PerTokenDelayMs != 0 {
		t.Fatalf("unexpected base/jitter/per-token: %+v", cfg)
	}
	if cfg.ErrorRate != 0 || cfg.ErrorMode != "mixed" {
		t.Fatalf("unexpected error config: %+v", cfg)
	}
	if cfg.TTFTMinMs != 0 || cfg.TTFTMaxMs != 0 || cfg.TokensPerSec != 0 {
		t.Fatalf("unexpected timing defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9999")
	t.Setenv("PRESET", "VLLM")
	t.Setenv("DEFAULT_MODEL", "test-model")
	t.Setenv("BASE_DELAY_MS", "1")
	t.Setenv("JITTER_MS", "2")
	t.Setenv("PER_TOKEN_DELAY_MS", "3")
	t.Setenv("ERROR_RATE", "0.5")
	t.Setenv("ERROR_MODE", "500")
	t.Setenv("TTFT_MIN_MS", "5")
	t.Setenv("TTFT_MAX_MS", "7")
	t.Setenv("TOKENS_PER_SEC", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != "127.0.0.1" || cfg.Port != 9999 {
		t.Fatalf("overrides not applied to listen address: %+v", cfg)
	}
	if cfg.Addr() != "127.0.0.1:9999" {
		t.Fatalf("unexpected Addr: %q", cfg.Addr())
	}
	if cfg.Preset != "vllm" || cfg.DefaultModel != "test-model" {
		t.Fatalf("overrides not applied to preset/model: %+v", cfg)
	}
	if cfg.BaseDelayMs != 1 || cfg.JitterMs != 2 || cfg.PerTokenDelayMs != 3 {
		t.Fatalf("overrides not applied to delays: %+v", cfg)
	}
	if cfg.ErrorRate != 0.5 || cfg.ErrorMode != "500" {
		t.Fatalf("overrides not applied to error config: %+v", cfg)
	}
	if cfg.TTFTMinMs != 5 || cfg.TTFTMaxMs != 7 || cfg.TokensPerSec != 42 {
		t.Fatalf("overrides not applied to timing: %+v", cfg)
	}
}

func TestApplyPresetOverrides(t *testing.T) {
	tests := []struct {
		preset       string
		ttftMin      int
		ttftMax      int
		tokensPerSec int
	}{
		{preset: "openai", ttftMin: 120, ttftMax: 800, tokensPerSec: 35},
		{preset: "vllm", ttftMin: 30, ttftMax: 200, tokensPerSec: 90},
		{preset: "hybrid", ttftMin: 120, ttftMax: 700, tokensPerSec: 35},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			cfg := Config{Preset: tc.preset}
			ApplyPresetOverrides(&cfg)
			if cfg.TTFTMinMs != tc.ttftMin || cfg.TTFTMaxMs != tc.ttftMax || cfg.TokensPerSec != tc.tokensPerSec {
				t.Fatalf("unexpected overrides: %+v", cfg)
			}
		})
	}
}

func TestApplyPresetOverridesKeepsExplicitValues(t *testing.T) {
	cfg := Config{Preset: "none", TTFTMinMs: 11, TTFTMaxMs: 22, TokensPerSec: 33}
	ApplyPresetOverrides(&cfg)
	if cfg.TTFTMinMs != 11 || cfg.TTFTMaxMs != 22 || cfg.TokensPerSec != 33 {
		t.Fatalf("preset none must not touch knobs: %+v", cfg)
	}

	cfg = Config{Preset: "garbage", TTFTMinMs: 11}
	ApplyPresetOverrides(&cfg)
	if cfg.TTFTMinMs != 11 {
		t.Fatalf("unknown preset must not touch knobs: %+v", cfg)
	}
}

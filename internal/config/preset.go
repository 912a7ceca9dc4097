package config

import "github.com/yungtweek/responses-mock/internal/logger"

// ApplyPresetOverrides rewrites the timing knobs with a named latency
// personality. "none" leaves the loaded values untouched.
func ApplyPresetOverrides(cfg *Config) {
	switch cfg.Preset {
	case "openai":
		// OpenAI-like (general): typical TTFT, moderate throughput
		cfg.TTFTMinMs = 120
		cfg.TTFTMaxMs = 800
		cfg.TokensPerSec = 35

	case "vllm":
		// vLLM-like: fast TTFT, high throughput
		cfg.TTFTMinMs = 30
		cfg.TTFTMaxMs = 200
		cfg.TokensPerSec = 90

	case "hybrid":
		// Hybrid: balanced, most realistic for production chat
		cfg.TTFTMinMs = 120
		cfg.TTFTMaxMs = 700
		cfg.TokensPerSec = 35

	case "", "none":
		return

	default:
		logger.Log.Warnw("[config] unknown preset, keeping loaded values", "preset", cfg.Preset)
		return
	}

	logger.Log.Infow("[config] applied preset overrides",
		"preset", cfg.Preset,
		"ttftMinMs", cfg.TTFTMinMs,
		"ttftMaxMs", cfg.TTFTMaxMs,
		"tokensPerSec", cfg.TokensPerSec,
	)
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime knob for the mock server. Values are resolved
// from flat environment variables (PORT, BASE_DELAY_MS, ...), then an
// optional responses-mock.yaml in the working directory, then the defaults
// registered in Load.
type Config struct {
	Host         string
	Port         int
	Profile      string // logger profile: prod|dev
	LogLevel     string // debug|info|warn|error (empty keeps the profile default)
	Preset       string // none|openai|vllm|hybrid (latency personalities)
	DefaultModel string // model name used when a request omits one

	BaseDelayMs     int
	JitterMs        int
	PerTokenDelayMs int
	ErrorRate       float64
	ErrorMode       string // mixed|429|500

	// LLM-like timing
	TTFTMinMs    int // time-to-first-token min
	TTFTMaxMs    int // time-to-first-token max
	TokensPerSec int // generation speed (approx)

	DebugOutputChars int // echo preview length in logs
}

// Addr returns the listen address as host:port.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("profile", "dev")
	v.SetDefault("log_level", "")
	v.SetDefault("preset", "none")
	v.SetDefault("default_model", "mock-model")
	v.SetDefault("base_delay_ms", 0)
	v.SetDefault("jitter_ms", 0)
	v.SetDefault("per_token_delay_ms", 0)
	v.SetDefault("error_rate", 0.0)
	v.SetDefault("error_mode", "mixed")
	v.SetDefault("ttft_min_ms", 0)
	v.SetDefault("ttft_max_ms", 0)
	v.SetDefault("tokens_per_sec", 0)
	v.SetDefault("debug_output_chars", 120)

	v.SetConfigName("responses-mock")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		// No config file is fine -- env and defaults cover everything.
	}

	return Config{
		Host:         v.GetString("host"),
		Port:         v.GetInt("port"),
		Profile:      v.GetString("profile"),
		LogLevel:     v.GetString("log_level"),
		Preset:       strings.ToLower(v.GetString("preset")),
		DefaultModel: v.GetString("default_model"),

		BaseDelayMs:     v.GetInt("base_delay_ms"),
		JitterMs:        v.GetInt("jitter_ms"),
		PerTokenDelayMs: v.GetInt("per_token_delay_ms"),
		ErrorRate:       v.GetFloat64("error_rate"),
		ErrorMode:       strings.ToLower(v.GetString("error_mode")),

		TTFTMinMs:    v.GetInt("ttft_min_ms"),
		TTFTMaxMs:    v.GetInt("ttft_max_ms"),
		TokensPerSec: v.GetInt("tokens_per_sec"),

		DebugOutputChars: v.GetInt("debug_output_chars"),
	}, nil
}

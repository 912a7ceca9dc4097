package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungtweek/responses-mock/internal/config"
	"github.com/yungtweek/responses-mock/internal/http"
	"github.com/yungtweek/responses-mock/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("dev", "")
		logger.Log.Fatalw("[responses-mock] config error", "err", err)
	}

	logger.Init(cfg.Profile, cfg.LogLevel)
	defer logger.Sync()

	config.ApplyPresetOverrides(&cfg)

	logger.Log.Infow(
		"starting mock Responses API server",
		"addr", cfg.Addr(),
		"preset", cfg.Preset,
		"defaultModel", cfg.DefaultModel,
		"baseDelayMs", cfg.BaseDelayMs,
		"jitterMs", cfg.JitterMs,
		"perTokenDelayMs", cfg.PerTokenDelayMs,
		"ttftMinMs", cfg.TTFTMinMs,
		"ttftMaxMs", cfg.TTFTMaxMs,
		"tokensPerSec", cfg.TokensPerSec,
		"errorRate", cfg.ErrorRate,
		"errorMode", cfg.ErrorMode,
		"debugOutputChars", cfg.DebugOutputChars,
	)

	svc := http.NewMockResponsesService(cfg)
	srv := http.NewServer(cfg.Addr(), svc)

	// Handle SIGINT/SIGTERM for a clean shutdown in local dev / docker.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Log.Info("[responses-mock] shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Log.Errorw("[responses-mock] shutdown error", "err", err)
		}
	}()

	if err := srv.Run(); err != nil {
		logger.Log.Fatalw("[responses-mock] server error", "err", err)
	}
}

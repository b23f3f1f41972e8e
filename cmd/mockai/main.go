package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungtweek/mockai/internal/api"
	"github.com/yungtweek/mockai/internal/config"
	"github.com/yungtweek/mockai/internal/logger"
	"github.com/yungtweek/mockai/internal/mock"
	"github.com/yungtweek/mockai/internal/resource"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	config.ApplyPresetOverrides(&cfg)

	logger.Init(cfg.Profile)
	defer logger.Sync()

	contents, err := mock.LoadContents(cfg.MockFilePath)
	if err != nil {
		logger.Log.Fatalw("[mockai] failed to load canned contents", "path", cfg.MockFilePath, "err", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Log.Infow(
		"starting MockAI server",
		"addr", addr,
		"preset", cfg.Preset,
		"mockType", cfg.MockType,
		"mockFilePath", cfg.MockFilePath,
		"responseDelayMs", cfg.ResponseDelayMs,
		"streamIntervalMs", cfg.StreamIntervalMs,
		"batchCompletionDelayMs", cfg.BatchCompletionDelayMs,
		"requestSizeLimit", cfg.RequestSizeLimit,
		"cannedContents", len(contents),
	)

	registry := resource.NewRegistry(time.Duration(cfg.BatchCompletionDelayMs) * time.Millisecond)
	srv := api.New(cfg, registry, contents)

	// Handle SIGINT/SIGTERM for a clean shutdown in local dev / docker.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Log.Info("[mockai] shutting down...")
		srv.GracefulStop()
	}()

	if err := srv.Run(addr); err != nil {
		logger.Log.Fatalw("[mockai] server error", "err", err)
	}
}

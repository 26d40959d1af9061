package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/furkancak2r/vibe-track-insights/internal"
	"github.com/furkancak2r/vibe-track-insights/internal/api"
	"github.com/furkancak2r/vibe-track-insights/internal/config"
	"github.com/furkancak2r/vibe-track-insights/internal/service"
	"github.com/furkancak2r/vibe-track-insights/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	repo, err := storage.NewMoodEntryRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage backend %q: %v", cfg.StorageBackend, err)
	}

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; suggestions will always use the static fallback table")
	}
	suggestions := service.NewSuggestionService(cfg.GeminiAPIKey, logger)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := api.NewApp(logger, repo, suggestions)
	r := api.NewRouter(app)

	logger.Infof("mood tracker listening on :%s (backend=%s, env=%s)", cfg.Port, cfg.StorageBackend, cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}

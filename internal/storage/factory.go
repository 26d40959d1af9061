package storage

import (
	"github.com/furkancak2r/vibe-track-insights/internal"
	"github.com/furkancak2r/vibe-track-insights/internal/config"
)

// NewMoodEntryRepository selects the backend from configuration. The choice is
// made once at construction; nothing downstream consults a global toggle.
func NewMoodEntryRepository(cfg *config.Config, logger internal.Logger) (MoodEntryRepository, error) {
	switch cfg.StorageBackend {
	case "mongo":
		return NewMongoStorage(cfg.MongoURI, cfg.MongoDatabase, logger)
	default:
		return NewMemoryStorage(logger), nil
	}
}

package api

import (
	"context"

	"github.com/furkancak2r/vibe-track-insights/internal"
	"github.com/furkancak2r/vibe-track-insights/internal/storage"
)

// SuggestionProvider is the total suggestion call: it never fails, it only
// ever returns a well-formed suggestion (AI-generated or static fallback).
type SuggestionProvider interface {
	GetActivitySuggestions(ctx context.Context, mood internal.MoodType, notes string) internal.ActivitySuggestion
}

type App interface {
	Logger() internal.Logger
	MoodRepo() storage.MoodEntryRepository
	Suggestions() SuggestionProvider
}

type app struct {
	logger      internal.Logger
	moodRepo    storage.MoodEntryRepository
	suggestions SuggestionProvider
}

func NewApp(logger internal.Logger, moodRepo storage.MoodEntryRepository, suggestions SuggestionProvider) App {
	return &app{
		logger:      logger,
		moodRepo:    moodRepo,
		suggestions: suggestions,
	}
}

func (a *app) Logger() internal.Logger               { return a.logger }
func (a *app) MoodRepo() storage.MoodEntryRepository { return a.moodRepo }
func (a *app) Suggestions() SuggestionProvider       { return a.suggestions }

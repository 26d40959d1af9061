package storage

import (
	"context"
	"errors"
	"time"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

// ErrNotFound signals that no mood entry exists for the requested id.
var ErrNotFound = errors.New("storage: mood entry not found")

// MoodEntryRepository is the persistence contract for mood entries. Both
// implementations (in-memory map, mongo document collection) must behave
// identically from the caller's perspective, including the create-time
// same-day upsert.
type MoodEntryRepository interface {
	// CreateMoodEntry inserts a new entry, unless one already exists for the
	// same user and calendar day, in which case that entry is overwritten in
	// place and keeps its id.
	CreateMoodEntry(ctx context.Context, input internal.MoodEntryInput) (internal.MoodEntry, error)
	// UpdateMoodEntry replaces the payload fields of the entry with the given
	// id. The id never relocates. Returns ErrNotFound if no such entry exists.
	UpdateMoodEntry(ctx context.Context, id int, input internal.MoodEntryInput) (internal.MoodEntry, error)
	GetMoodEntry(ctx context.Context, id int) (internal.MoodEntry, error)
	ListMoodEntries(ctx context.Context) ([]internal.MoodEntry, error)
	// ListMoodEntriesByMonth returns entries whose date falls within the given
	// "YYYY-MM" month, first through last day inclusive, ignoring time-of-day.
	ListMoodEntriesByMonth(ctx context.Context, yearMonth string) ([]internal.MoodEntry, error)
	ListMoodEntriesByDateRange(ctx context.Context, start, end time.Time) ([]internal.MoodEntry, error)
	// DeleteMoodEntry removes the entry if present and reports whether it existed.
	DeleteMoodEntry(ctx context.Context, id int) (bool, error)
	// ResetMoodEntries clears every entry. Dev/test utility.
	ResetMoodEntries(ctx context.Context) error
}

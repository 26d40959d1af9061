package storage

import (
	"context"
	"sync"
	"time"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

// MemoryStorage keeps mood entries in an in-process map with a monotonic id
// counter starting at 1. The mutex protects map integrity only; the
// read-then-write upsert sequence is not transactional, same as the mongo
// backend's id allocation.
type MemoryStorage struct {
	entries map[int]*internal.MoodEntry
	nextID  int
	mu      sync.RWMutex
	logger  internal.Logger
}

func NewMemoryStorage(logger internal.Logger) *MemoryStorage {
	return &MemoryStorage{
		entries: make(map[int]*internal.MoodEntry),
		nextID:  1,
		logger:  logger,
	}
}

func (s *MemoryStorage) CreateMoodEntry(_ context.Context, input internal.MoodEntryInput) (internal.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// One entry per user per calendar day: overwrite in place, keep the id.
	for _, existing := range s.entries {
		if existing.UserID == input.UserID && sameDay(existing.Date, input.Date) {
			s.logger.Debugf("storage: same-day entry %d exists for user %d, updating in place", existing.ID, input.UserID)
			return s.applyInput(existing, input), nil
		}
	}

	entry := &internal.MoodEntry{
		ID:      s.nextID,
		UserID:  input.UserID,
		Date:    input.Date,
		Mood:    input.Mood,
		Notes:   input.Notes,
		Factors: input.Factors,
	}
	s.nextID++
	s.entries[entry.ID] = entry
	return *entry, nil
}

func (s *MemoryStorage) UpdateMoodEntry(_ context.Context, id int, input internal.MoodEntryInput) (internal.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[id]
	if !ok {
		return internal.MoodEntry{}, ErrNotFound
	}
	return s.applyInput(existing, input), nil
}

// applyInput overwrites an entry's payload fields, preserving its id.
// Callers must hold the write lock.
func (s *MemoryStorage) applyInput(entry *internal.MoodEntry, input internal.MoodEntryInput) internal.MoodEntry {
	entry.UserID = input.UserID
	entry.Date = input.Date
	entry.Mood = input.Mood
	entry.Notes = input.Notes
	entry.Factors = input.Factors
	return *entry
}

func (s *MemoryStorage) GetMoodEntry(_ context.Context, id int) (internal.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return internal.MoodEntry{}, ErrNotFound
	}
	return *entry, nil
}

func (s *MemoryStorage) ListMoodEntries(_ context.Context) ([]internal.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]internal.MoodEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, *e)
	}
	return entries, nil
}

func (s *MemoryStorage) ListMoodEntriesByMonth(ctx context.Context, yearMonth string) ([]internal.MoodEntry, error) {
	start, end, err := monthRange(yearMonth)
	if err != nil {
		return nil, err
	}
	return s.ListMoodEntriesByDateRange(ctx, start, end)
}

func (s *MemoryStorage) ListMoodEntriesByDateRange(_ context.Context, start, end time.Time) ([]internal.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []internal.MoodEntry{}
	for _, e := range s.entries {
		d := e.Date.UTC()
		if !d.Before(start) && !d.After(end) {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (s *MemoryStorage) DeleteMoodEntry(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false, nil
	}
	delete(s.entries, id)
	return true, nil
}

func (s *MemoryStorage) ResetMoodEntries(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[int]*internal.MoodEntry)
	s.nextID = 1
	return nil
}

// --- Compile-time assertions ---
var _ MoodEntryRepository = (*MemoryStorage)(nil)

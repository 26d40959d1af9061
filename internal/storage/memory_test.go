package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

func setupMemoryStorage() *MemoryStorage {
	return NewMemoryStorage(internal.NewZapLogger(zap.NewNop().Sugar()))
}

func entryInput(userID int, date time.Time, mood internal.MoodType) internal.MoodEntryInput {
	return internal.MoodEntryInput{UserID: userID, Date: date, Mood: mood}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()

	first, err := s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), internal.MoodGood))
	assert.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC), internal.MoodBad))
	assert.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateSameDayUpserts(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()

	morning, err := s.CreateMoodEntry(ctx, internal.MoodEntryInput{
		UserID: 1,
		Date:   time.Date(2025, 4, 15, 8, 0, 0, 0, time.UTC),
		Mood:   internal.MoodNeutral,
		Notes:  "slow start",
	})
	assert.NoError(t, err)

	evening, err := s.CreateMoodEntry(ctx, internal.MoodEntryInput{
		UserID:  1,
		Date:    time.Date(2025, 4, 15, 21, 30, 0, 0, time.UTC),
		Mood:    internal.MoodGreat,
		Notes:   "turned around",
		Factors: []string{"Exercise"},
	})
	assert.NoError(t, err)

	// Second call on the same calendar day overwrites the first entry in
	// place and keeps its id.
	assert.Equal(t, morning.ID, evening.ID)
	assert.Equal(t, internal.MoodGreat, evening.Mood)
	assert.Equal(t, "turned around", evening.Notes)
	assert.Equal(t, []string{"Exercise"}, evening.Factors)

	all, err := s.ListMoodEntries(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateSameDayDifferentUsers(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()
	day := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)

	a, err := s.CreateMoodEntry(ctx, entryInput(1, day, internal.MoodGood))
	assert.NoError(t, err)
	b, err := s.CreateMoodEntry(ctx, entryInput(2, day, internal.MoodBad))
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	all, err := s.ListMoodEntries(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateMoodEntry(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()

	created, err := s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), internal.MoodBad))
	assert.NoError(t, err)

	updated, err := s.UpdateMoodEntry(ctx, created.ID, internal.MoodEntryInput{
		UserID: 1,
		Date:   created.Date,
		Mood:   internal.MoodGood,
		Notes:  "better now",
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, internal.MoodGood, updated.Mood)

	_, err = s.UpdateMoodEntry(ctx, 999, entryInput(1, created.Date, internal.MoodGood))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMoodEntryNotFound(t *testing.T) {
	s := setupMemoryStorage()
	_, err := s.GetMoodEntry(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByMonthBoundaries(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()

	inAprilFirst, _ := s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), internal.MoodGood))
	inAprilLast, _ := s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC), internal.MoodGreat))
	s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC), internal.MoodBad))
	s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), internal.MoodBad))

	april, err := s.ListMoodEntriesByMonth(ctx, "2025-04")
	assert.NoError(t, err)
	assert.Len(t, april, 2)

	ids := []int{april[0].ID, april[1].ID}
	assert.Contains(t, ids, inAprilFirst.ID)
	assert.Contains(t, ids, inAprilLast.ID)
}

func TestListByMonthInvalidKey(t *testing.T) {
	s := setupMemoryStorage()
	_, err := s.ListMoodEntriesByMonth(context.Background(), "2025-4")
	assert.Error(t, err)
}

func TestListByDateRangeInclusive(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()

	s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC), internal.MoodGood))
	s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC), internal.MoodBad))

	entries, err := s.ListMoodEntriesByDateRange(ctx,
		time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDeleteMoodEntry(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()

	created, _ := s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), internal.MoodGood))

	found, err := s.DeleteMoodEntry(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = s.DeleteMoodEntry(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestResetClearsEntriesAndCounter(t *testing.T) {
	s := setupMemoryStorage()
	ctx := context.Background()

	s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), internal.MoodGood))
	s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), internal.MoodBad))

	assert.NoError(t, s.ResetMoodEntries(ctx))

	all, err := s.ListMoodEntries(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)

	fresh, err := s.CreateMoodEntry(ctx, entryInput(1, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), internal.MoodGood))
	assert.NoError(t, err)
	assert.Equal(t, 1, fresh.ID)
}

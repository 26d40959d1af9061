package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

func moodOnly(moods ...internal.MoodType) []internal.MoodEntry {
	entries := make([]internal.MoodEntry, len(moods))
	for i, m := range moods {
		entries[i] = internal.MoodEntry{
			ID:     i + 1,
			UserID: 1,
			Date:   time.Date(2025, 4, i+1, 0, 0, 0, 0, time.UTC),
			Mood:   m,
		}
	}
	return entries
}

func TestCalculateMoodSummaryEmpty(t *testing.T) {
	summary := CalculateMoodSummary("2099-01", nil)

	assert.Equal(t, "2099-01", summary.Month)
	assert.Equal(t, 0, summary.Total)
	assert.Len(t, summary.Counts, 5)
	assert.Len(t, summary.Percentages, 5)
	for _, mood := range internal.MoodTypes {
		assert.Equal(t, 0, summary.Counts[mood])
		assert.Equal(t, 0, summary.Percentages[mood])
	}
}

func TestCalculateMoodSummaryCountsAndPercentages(t *testing.T) {
	summary := CalculateMoodSummary("2025-04", moodOnly(
		internal.MoodGreat, internal.MoodGreat, internal.MoodGood, internal.MoodNeutral,
	))

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, map[internal.MoodType]int{
		internal.MoodGreat:    2,
		internal.MoodGood:     1,
		internal.MoodNeutral:  1,
		internal.MoodBad:      0,
		internal.MoodTerrible: 0,
	}, summary.Counts)
	assert.Equal(t, map[internal.MoodType]int{
		internal.MoodGreat:    50,
		internal.MoodGood:     25,
		internal.MoodNeutral:  25,
		internal.MoodBad:      0,
		internal.MoodTerrible: 0,
	}, summary.Percentages)
}

func TestCalculateMoodSummaryTotalMatchesEntries(t *testing.T) {
	entries := moodOnly(internal.MoodBad, internal.MoodBad, internal.MoodTerrible)
	summary := CalculateMoodSummary("2025-04", entries)

	sum := 0
	for _, c := range summary.Counts {
		sum += c
	}
	assert.Equal(t, len(entries), summary.Total)
	assert.Equal(t, summary.Total, sum)
}

func TestCalculateMoodSummaryRoundingMayNotSumTo100(t *testing.T) {
	// 1/3 each rounds to 33: the per-category rounding is independent and the
	// percentages summing to 99 here is accepted behavior.
	summary := CalculateMoodSummary("2025-04", moodOnly(
		internal.MoodGreat, internal.MoodGood, internal.MoodBad,
	))

	assert.Equal(t, 33, summary.Percentages[internal.MoodGreat])
	assert.Equal(t, 33, summary.Percentages[internal.MoodGood])
	assert.Equal(t, 33, summary.Percentages[internal.MoodBad])
}

package service

import (
	"math"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

// CalculateMoodSummary aggregates one month of entries into per-category
// counts and percentages. Both maps always contain all five categories,
// zero-filled, even for an empty month. Percentages are rounded per category
// independently, so they are not guaranteed to sum to exactly 100.
func CalculateMoodSummary(month string, entries []internal.MoodEntry) internal.MoodSummary {
	counts := make(map[internal.MoodType]int, len(internal.MoodTypes))
	percentages := make(map[internal.MoodType]int, len(internal.MoodTypes))
	for _, mood := range internal.MoodTypes {
		counts[mood] = 0
		percentages[mood] = 0
	}

	for _, entry := range entries {
		counts[entry.Mood]++
	}

	total := len(entries)
	if total > 0 {
		for mood, count := range counts {
			if count > 0 {
				percentages[mood] = int(math.Round(float64(count) / float64(total) * 100))
			}
		}
	}

	return internal.MoodSummary{
		Month:       month,
		Counts:      counts,
		Total:       total,
		Percentages: percentages,
	}
}

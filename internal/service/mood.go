package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/furkancak2r/vibe-track-insights/internal"
	"github.com/furkancak2r/vibe-track-insights/internal/storage"
)

var validate = validator.New()

// MoodEntryRequest is the create/update body. The date arrives as an ISO
// string and is coerced by ParseEntryDate.
type MoodEntryRequest struct {
	UserID  int      `json:"userId" validate:"required"`
	Date    string   `json:"date" validate:"required"`
	Mood    string   `json:"mood" validate:"required,oneof=great good neutral bad terrible"`
	Notes   string   `json:"notes,omitempty" validate:"omitempty"`
	Factors []string `json:"factors,omitempty" validate:"omitempty,dive,required"`
}

func ValidateMoodEntryRequest(body *MoodEntryRequest) error {
	return validate.Struct(body)
}

var entryDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseEntryDate accepts an RFC3339 timestamp or a bare YYYY-MM-DD date.
func ParseEntryDate(raw string) (time.Time, error) {
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected an ISO date string", raw)
}

func entryInput(body *MoodEntryRequest, date time.Time) internal.MoodEntryInput {
	return internal.MoodEntryInput{
		UserID:  body.UserID,
		Date:    date,
		Mood:    internal.MoodType(body.Mood),
		Notes:   body.Notes,
		Factors: body.Factors,
	}
}

// CreateMoodEntry runs the create-or-same-day-update path of the store.
func CreateMoodEntry(ctx context.Context, repo storage.MoodEntryRepository, body *MoodEntryRequest, date time.Time) (internal.MoodEntry, error) {
	return repo.CreateMoodEntry(ctx, entryInput(body, date))
}

// UpdateMoodEntry replaces the payload of an existing entry by id.
func UpdateMoodEntry(ctx context.Context, repo storage.MoodEntryRepository, id int, body *MoodEntryRequest, date time.Time) (internal.MoodEntry, error) {
	return repo.UpdateMoodEntry(ctx, id, entryInput(body, date))
}

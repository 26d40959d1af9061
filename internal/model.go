package internal

import (
	"strings"
	"time"
)

// MoodType is one of the five ordinal mood categories, from best to worst.
type MoodType string

const (
	MoodGreat    MoodType = "great"
	MoodGood     MoodType = "good"
	MoodNeutral  MoodType = "neutral"
	MoodBad      MoodType = "bad"
	MoodTerrible MoodType = "terrible"
)

// MoodTypes lists every valid category. Summaries must carry all of them,
// zero-filled, regardless of the underlying data.
var MoodTypes = []MoodType{MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodTerrible}

func IsValidMood(s string) bool {
	for _, m := range MoodTypes {
		if string(m) == s {
			return true
		}
	}
	return false
}

// MoodTypeList returns the categories as a comma-separated string for error messages.
func MoodTypeList() string {
	names := make([]string, len(MoodTypes))
	for i, m := range MoodTypes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// MoodEntry is one logged mood. At most one entry exists per (UserID, calendar day);
// time-of-day is stored but ignored for uniqueness and aggregation.
type MoodEntry struct {
	ID      int       `json:"id" bson:"_id"`
	UserID  int       `json:"userId" bson:"user_id"`
	Date    time.Time `json:"date" bson:"date"`
	Mood    MoodType  `json:"mood" bson:"mood"`
	Notes   string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Factors []string  `json:"factors,omitempty" bson:"factors,omitempty"`
}

// MoodEntryInput is a mood entry payload before the store has assigned an id.
type MoodEntryInput struct {
	UserID  int
	Date    time.Time
	Mood    MoodType
	Notes   string
	Factors []string
}

// MoodSummary is the derived aggregate for one calendar month. Counts and
// Percentages always contain all five categories. Percentages are rounded
// independently per category, so they need not sum to exactly 100.
type MoodSummary struct {
	Month       string           `json:"month"`
	Counts      map[MoodType]int `json:"counts"`
	Total       int              `json:"total"`
	Percentages map[MoodType]int `json:"percentages"`
}

// ActivitySuggestion is what the suggestion endpoint returns: five short
// activity ideas and a supportive message.
type ActivitySuggestion struct {
	Activities []string `json:"activities"`
	Message    string   `json:"message"`
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func (e *AppError) Error() string {
	return e.Message
}

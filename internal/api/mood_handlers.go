package api

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/furkancak2r/vibe-track-insights/internal/service"
	"github.com/furkancak2r/vibe-track-insights/internal/storage"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func ListMoods(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := app.MoodRepo().ListMoodEntries(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch mood entries")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, entries)
	}
}

func GetMood(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("id")

		// The summary route lives one segment deeper; a bare "summary" here is
		// a malformed summary request, never an entry id.
		if raw == "summary" {
			HandleError(c, app.Logger(), errors.New("missing month segment"), 400, "Invalid request. Use /api/moods/summary/YYYY-MM format")
			return
		}

		id, err := strconv.Atoi(raw)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid entry id")
			return
		}

		entry, err := app.MoodRepo().GetMoodEntry(c.Request.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			HandleError(c, app.Logger(), err, 404, "Mood entry not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch mood entry")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, entry)
	}
}

// GetMoodsByMonth serves both two-segment forms under /api/moods: the literal
// "summary/YYYY-MM" lookup and the "/:year/:month" listing. Gin rejects two
// differently-named parameters at the same position, so the split happens
// here instead of in the route table.
func GetMoodsByMonth(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := c.Param("id")
		second := c.Param("month")

		if first == "summary" {
			getMoodSummary(c, app, second)
			return
		}

		if len(second) == 1 {
			second = "0" + second
		}
		yearMonth := first + "-" + second

		entries, err := app.MoodRepo().ListMoodEntriesByMonth(c.Request.Context(), yearMonth)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid month")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, entries)
	}
}

func getMoodSummary(c *gin.Context, app App, yearMonth string) {
	if !yearMonthPattern.MatchString(yearMonth) {
		HandleError(c, app.Logger(), errors.New("month must match YYYY-MM"), 400, "Invalid format. Use YYYY-MM")
		return
	}

	// The summary contract guarantees a parseable, fully-populated shape: a
	// failing store degrades to an empty month, never to an error response.
	entries, err := app.MoodRepo().ListMoodEntriesByMonth(c.Request.Context(), yearMonth)
	if err != nil {
		app.Logger().Errorf("[request_id=%s] Failed to fetch entries for summary %s, returning empty summary: %v",
			c.GetString("request_id"), yearMonth, err)
		entries = nil
	}

	HandleSuccess(c, app.Logger(), http.StatusOK, service.CalculateMoodSummary(yearMonth, entries))
}

func CreateMood(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.MoodEntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateMoodEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		date, err := service.ParseEntryDate(body.Date)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateMoodEntry(c.Request.Context(), app.MoodRepo(), &body, date)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to create mood entry")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusCreated, entry)
	}
}

func UpdateMood(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid entry id")
			return
		}

		var body service.MoodEntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateMoodEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		date, err := service.ParseEntryDate(body.Date)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.UpdateMoodEntry(c.Request.Context(), app.MoodRepo(), id, &body, date)
		if errors.Is(err, storage.ErrNotFound) {
			HandleError(c, app.Logger(), err, 404, "Mood entry not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to update mood entry")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, entry)
	}
}

func DeleteMood(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid entry id")
			return
		}

		found, err := app.MoodRepo().DeleteMoodEntry(c.Request.Context(), id)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete mood entry")
			return
		}
		if !found {
			HandleError(c, app.Logger(), storage.ErrNotFound, 404, "Mood entry not found")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, gin.H{"success": true})
	}
}

func ResetMoods(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := app.MoodRepo().ResetMoodEntries(c.Request.Context()); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to reset mood entries")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, gin.H{"success": true})
	}
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

// GetSuggestions validates the mood and hands off to the suggestion provider.
// Upstream failures never surface here; the provider falls back internally.
func GetSuggestions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		mood := c.Param("mood")
		if !internal.IsValidMood(mood) {
			HandleError(c, app.Logger(), errors.New("unknown mood category"), 400,
				"Invalid mood. Must be one of: "+internal.MoodTypeList())
			return
		}

		notes := c.Query("notes")
		suggestion := app.Suggestions().GetActivitySuggestions(c.Request.Context(), internal.MoodType(mood), notes)
		HandleSuccess(c, app.Logger(), http.StatusOK, suggestion)
	}
}

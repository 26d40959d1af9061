package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the HTTP surface. Static segments ("reset") take
// priority over ":id" in Gin's tree, and the overlapping two-segment routes
// (summary/:yearMonth vs :year/:month) share one registration dispatched in
// GetMoodsByMonth, since Gin rejects differently-named parameters at the same
// position.
func RegisterRoutes(r *gin.Engine, app App) {
	moods := r.Group("/api/moods")
	moods.GET("", ListMoods(app))
	moods.POST("", CreateMood(app))
	moods.DELETE("/reset", ResetMoods(app))
	moods.GET("/:id", GetMood(app))
	moods.GET("/:id/:month", GetMoodsByMonth(app))
	moods.PUT("/:id", UpdateMood(app))
	moods.DELETE("/:id", DeleteMood(app))

	r.GET("/api/suggestions/:mood", GetSuggestions(app))
}

// NewRouter builds the engine used by main and by handler tests.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	RegisterRoutes(r, app)
	return r
}

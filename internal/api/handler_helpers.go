package api

import (
	"github.com/gin-gonic/gin"

	"github.com/furkancak2r/vibe-track-insights/internal"
	"github.com/furkancak2r/vibe-track-insights/internal/response"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(msg + ": " + err.Error())
	case 404:
		resp = response.NotFound(msg + ": " + err.Error())
	case 500:
		resp = response.InternalError(msg + ": " + err.Error())
	default:
		resp = response.NewAppError(status, msg+": "+err.Error())
	}
	c.JSON(status, resp)
}

// HandleSuccess logs the outcome and writes the payload as-is; success bodies
// are plain resources, not enveloped.
func HandleSuccess(c *gin.Context, logger internal.Logger, status int, data interface{}) {
	requestID := c.GetString("request_id")
	logger.Debugf("[request_id=%s] %s %s -> %d", requestID, c.Request.Method, c.FullPath(), status)
	c.JSON(status, data)
}

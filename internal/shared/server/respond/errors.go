package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// ErrorPage logs the failure and renders the error template matching the
// status code.
func ErrorPage(c *gin.Context, status int, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.HTML(status, errorTemplate(status), gin.H{"message": message})
	c.Abort()
}

func errorTemplate(status int) string {
	switch status {
	case http.StatusNotFound:
		return "404.html"
	case http.StatusInternalServerError:
		return "500.html"
	default:
		return "400.html"
	}
}

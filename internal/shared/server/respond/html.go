// Package respond renders HTML pages, redirects and error pages with
// consistent telemetry.
package respond

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Page renders a template with the given bindings.
func Page(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// Redirect sends the browser to location with 303 See Other.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectWithError redirects to location carrying a user-facing message
// in the query string for the destination page to display.
func RedirectWithError(c *gin.Context, location, message string) {
	if message != "" {
		location += "?error=" + url.QueryEscape(message)
	}
	c.Redirect(http.StatusSeeOther, location)
}

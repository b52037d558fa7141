package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/accounts"
	"resume-builder/internal/resumes"
	"resume-builder/internal/sanitize"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/session"
	"resume-builder/web"
)

// RouterDeps bundles everything the router wires together.
type RouterDeps struct {
	Config          config.Config
	Sessions        *session.Manager
	AccountsHandler *accounts.Handler
	ResumesHandler  *resumes.Handler
}

// NewRouter constructs the gin engine with middleware, templates and
// routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs()).ParseFS(web.Templates, "templates/*.html"),
	))

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	r.Static("/static/uploads", deps.Config.UploadsDir)

	r.GET("/", func(c *gin.Context) {
		respond.Page(c, http.StatusOK, "home.html", gin.H{})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	// Credential form posts are throttled per client IP.
	limiter := middleware.NewRateLimiter(nil)
	limit := middleware.RateLimit(limiter, middleware.RateLimitRule{Rate: 1, Burst: 10})
	deps.AccountsHandler.RegisterRoutes(r, limit)

	authed := r.Group("/", middleware.RequireUser(deps.Sessions))
	deps.ResumesHandler.RegisterRoutes(authed)

	r.NoRoute(func(c *gin.Context) {
		respond.ErrorPage(c, http.StatusNotFound, "Page not found.")
	})

	return r
}

// templateFuncs exposes the sanitizer callables to the template layer.
// All three are pure functions of their string input.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"e": func(s string) template.HTML {
			return template.HTML(sanitize.EscapeText(s))
		},
		"renderInline": sanitize.RenderInline,
		"renderHTML":   sanitize.RenderRich,
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

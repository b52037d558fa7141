package resumes

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/docstore"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/uploads"
)

// currentResumeCookie points at the caller's most recently generated
// record. It is a non-owning reference; the record it names may belong
// to an earlier process instance and no longer exist.
const currentResumeCookie = "current_resume"

// Handler serves the résumé builder pages.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the builder routes to a session-protected
// group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.dashboard)
	rg.POST("/generate", h.generate)
	for _, name := range TemplateNames() {
		rg.GET("/"+name, h.templatePage(name))
	}
	rg.GET("/resume/download", h.download)
}

func (h *Handler) dashboard(c *gin.Context) {
	respond.Page(c, http.StatusOK, "index.html", gin.H{
		"user":      middleware.UserNameFromContext(c),
		"templates": TemplateNames(),
		"error":     c.Query("error"),
	})
}

func (h *Handler) generate(c *gin.Context) {
	start := time.Now()
	userID := middleware.UserIDFromContext(c)

	var in Intake
	if err := c.ShouldBind(&in); err != nil {
		respond.RedirectWithError(c, "/dashboard", "Invalid form submission.")
		return
	}

	var photo *PhotoUpload
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader.Filename != "" {
		f, err := fileHeader.Open()
		if err != nil {
			respond.RedirectWithError(c, "/dashboard", "Unable to read the uploaded photo.")
			return
		}
		defer f.Close()
		photo = &PhotoUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      f,
		}
	}

	handle, err := h.Svc.Generate(c.Request.Context(), userID, in, photo)
	if err != nil {
		metrics.IncGenerateFailed()
		switch {
		case errors.Is(err, ErrUnknownTemplate):
			respond.RedirectWithError(c, "/dashboard", "Invalid template selected.")
		case errors.Is(err, uploads.ErrDisallowedType):
			respond.RedirectWithError(c, "/dashboard", "Invalid file type. Only PNG and JPEG allowed.")
		case errors.Is(err, uploads.ErrTooLarge):
			respond.RedirectWithError(c, "/dashboard", "File too large. Maximum allowed is 2MB.")
		default:
			telemetry.Error("resumes.generate_failed", map[string]any{
				"err":        err.Error(),
				"user_id":    userID,
				"request_id": c.GetString("requestId"),
			})
			respond.RedirectWithError(c, "/dashboard", "Error generating resume. Please try again.")
		}
		return
	}

	metrics.IncResumeGenerated()
	metrics.ObserveGenerateDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	c.SetCookie(currentResumeCookie, handle, 0, "/", "", false, true)
	respond.Redirect(c, "/"+in.Template)
}

func (h *Handler) templatePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle, ok := h.currentHandle(c)
		if !ok {
			respond.ErrorPage(c, http.StatusBadRequest, "No resume data found. Please build your resume first.")
			return
		}

		rc, err := h.Svc.Prepare(c.Request.Context(), handle)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				respond.ErrorPage(c, http.StatusBadRequest, "Saved resume not found on server.")
				return
			}
			telemetry.Error("resumes.prepare_failed", map[string]any{
				"err":        err.Error(),
				"handle":     handle,
				"request_id": c.GetString("requestId"),
			})
			respond.ErrorPage(c, http.StatusInternalServerError, "Unexpected server error.")
			return
		}

		respond.Page(c, http.StatusOK, name+".html", gin.H(rc))
	}
}

func (h *Handler) download(c *gin.Context) {
	handle, ok := h.currentHandle(c)
	if !ok {
		respond.RedirectWithError(c, "/dashboard", "No resume available to download.")
		return
	}

	path, err := h.Svc.DownloadPath(c.Request.Context(), handle)
	if err != nil {
		respond.RedirectWithError(c, "/dashboard", "Saved resume not found.")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// currentHandle reads and validates the current-resume cookie. The
// handle must be well-formed and owned by the session user.
func (h *Handler) currentHandle(c *gin.Context) (string, bool) {
	handle, err := c.Cookie(currentResumeCookie)
	if err != nil || handle == "" {
		return "", false
	}
	owner, _, err := docstore.SplitKey(handle)
	if err != nil || owner != middleware.UserIDFromContext(c) {
		return "", false
	}
	return handle, true
}

package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/session"
	"resume-builder/internal/shared/telemetry"
)

// Handler serves the sign-up, login and logout pages.
type Handler struct {
	Svc      *Service
	Sessions *session.Manager
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, sessions *session.Manager) *Handler {
	return &Handler{Svc: svc, Sessions: sessions}
}

// RegisterRoutes attaches the public auth routes. limit, when non-nil,
// throttles the credential form posts.
func (h *Handler) RegisterRoutes(r *gin.Engine, limit gin.HandlerFunc) {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}
	r.GET("/signup", h.signupPage)
	r.POST("/signup", limit, h.signup)
	r.GET("/login", h.loginPage)
	r.POST("/login", limit, h.login)
	r.GET("/logout", h.logout)
}

type signupForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (h *Handler) signupPage(c *gin.Context) {
	respond.Page(c, http.StatusOK, "signup.html", gin.H{})
}

func (h *Handler) signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		h.signupError(c, "All fields are required.")
		return
	}
	if form.Name == "" || form.Email == "" || form.Password == "" || form.ConfirmPassword == "" {
		h.signupError(c, "All fields are required.")
		return
	}
	if form.Password != form.ConfirmPassword {
		h.signupError(c, "Passwords do not match.")
		return
	}

	acc, err := h.Svc.Register(c.Request.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			h.signupError(c, "E-mail already registered.")
			return
		}
		telemetry.Error("accounts.register_failed", map[string]any{"err": err.Error()})
		respond.ErrorPage(c, http.StatusInternalServerError, "Could not create the account. Please try again.")
		return
	}

	if err := h.startSession(c, acc); err != nil {
		return
	}
	metrics.IncSignup()
	respond.Redirect(c, "/dashboard")
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handler) loginPage(c *gin.Context) {
	respond.Page(c, http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.loginError(c, "Invalid credentials.")
		return
	}

	acc, err := h.Svc.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			metrics.IncLoginFailed()
			h.loginError(c, "Invalid credentials.")
			return
		}
		telemetry.Error("accounts.authenticate_failed", map[string]any{"err": err.Error()})
		respond.ErrorPage(c, http.StatusInternalServerError, "Login failed. Please try again.")
		return
	}

	if err := h.startSession(c, acc); err != nil {
		return
	}
	respond.Redirect(c, "/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	h.Sessions.ClearCookie(c)
	respond.Redirect(c, "/")
}

func (h *Handler) startSession(c *gin.Context, acc Account) error {
	err := h.Sessions.SetCookie(c, session.Identity{ID: acc.ID, Name: acc.Name, Email: acc.Email})
	if err != nil {
		telemetry.Error("accounts.session_issue_failed", map[string]any{"err": err.Error()})
		respond.ErrorPage(c, http.StatusInternalServerError, "Login failed. Please try again.")
	}
	return err
}

func (h *Handler) signupError(c *gin.Context, message string) {
	respond.Page(c, http.StatusBadRequest, "signup.html", gin.H{"error": message})
}

func (h *Handler) loginError(c *gin.Context, message string) {
	respond.Page(c, http.StatusUnauthorized, "login.html", gin.H{"error": message})
}

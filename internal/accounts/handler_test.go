package accounts_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/session"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:          "0",
		Env:           "dev",
		DataDir:       t.TempDir(),
		UploadsDir:    t.TempDir(),
		SessionSecret: "test-secret",
		BcryptCost:    bcrypt.MinCost,
	})
	require.NoError(t, err)
	return app
}

func postForm(router http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range resp.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func TestSignupLogsUserIn(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(app.Router, "/signup", url.Values{
		"name":             {"Jane Doe"},
		"email":            {"jane@example.com"},
		"password":         {"s3cret"},
		"confirm_password": {"s3cret"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/dashboard", resp.Header().Get("Location"))

	cookie := sessionCookie(t, resp)
	id, err := app.Sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", id.Name)
	assert.Equal(t, "jane@example.com", id.Email)
}

func TestSignupValidation(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(app.Router, "/signup", url.Values{
		"name":             {"Jane"},
		"email":            {"jane@example.com"},
		"password":         {"one"},
		"confirm_password": {"two"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Passwords do not match.")

	resp = postForm(app.Router, "/signup", url.Values{
		"name": {"Jane"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "All fields are required.")
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{
		"name":             {"Jane"},
		"email":            {"jane@example.com"},
		"password":         {"pw"},
		"confirm_password": {"pw"},
	}
	resp := postForm(app.Router, "/signup", form)
	require.Equal(t, http.StatusSeeOther, resp.Code)

	form.Set("email", "JANE@EXAMPLE.COM")
	resp = postForm(app.Router, "/signup", form)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "E-mail already registered.")
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(app.Router, "/signup", url.Values{
		"name":             {"Jane"},
		"email":            {"A@B.com"},
		"password":         {"pw"},
		"confirm_password": {"pw"},
	})
	require.Equal(t, http.StatusSeeOther, resp.Code)

	// Lookup is case-insensitive against the normalized stored e-mail.
	resp = postForm(app.Router, "/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"pw"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/dashboard", resp.Header().Get("Location"))
	sessionCookie(t, resp)

	resp = postForm(app.Router, "/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid credentials.")
}

func TestLogoutClearsSession(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(app.Router, "/signup", url.Values{
		"name":             {"Jane"},
		"email":            {"jane@example.com"},
		"password":         {"pw"},
		"confirm_password": {"pw"},
	})
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	out := httptest.NewRecorder()
	app.Router.ServeHTTP(out, req)

	assert.Equal(t, http.StatusSeeOther, out.Code)
	assert.Equal(t, "/", out.Header().Get("Location"))
	for _, c := range out.Result().Cookies() {
		if c.Name == session.CookieName {
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/login", resp.Header().Get("Location"))
}

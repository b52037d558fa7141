// Package session issues and verifies the signed cookie carrying the
// logged-in user's identity. Only non-sensitive fields ride in the
// cookie; the password hash never leaves the account store.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie.
const CookieName = "session"

// ErrInvalidSession covers missing, expired and tampered tokens.
var ErrInvalidSession = errors.New("invalid session")

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	ID    string
	Name  string
	Email string
}

type claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens with a process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager with the given HS256 secret and token
// lifetime.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the identity.
func (m *Manager) Issue(id Identity) (string, error) {
	if id.ID == "" {
		return "", errors.New("identity id is required")
	}
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:  id.Name,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning the identity it carries.
func (m *Manager) Verify(token string) (Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidSession
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return Identity{}, ErrInvalidSession
	}
	return Identity{ID: c.Subject, Name: c.Name, Email: c.Email}, nil
}

// SetCookie issues a token for id and attaches it as an HTTP-only cookie.
func (m *Manager) SetCookie(c *gin.Context, id Identity) error {
	token, err := m.Issue(id)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// FromRequest extracts and verifies the identity from the request cookie.
func (m *Manager) FromRequest(c *gin.Context) (Identity, error) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return Identity{}, ErrInvalidSession
	}
	return m.Verify(token)
}

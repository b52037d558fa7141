package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the e-mail or password is wrong.
// One error for both cases, so the login form cannot be used to probe
// which e-mails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service contains registration and authentication logic.
type Service struct {
	Repo       Repo
	BcryptCost int
}

// NewService constructs a Service. A non-positive cost falls back to the
// bcrypt default.
func NewService(repo Repo, bcryptCost int) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{Repo: repo, BcryptCost: bcryptCost}
}

// NormalizeEmail lower-cases and trims an e-mail for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with a hashed password. The e-mail is
// normalized before the uniqueness check.
func (s *Service) Register(ctx context.Context, name, email, password string) (Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return Account{}, err
	}

	acc := Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, acc); err != nil {
		return Account{}, err
	}
	return acc, nil
}

// Authenticate verifies the password for the account registered under
// email.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	acc, err := s.Repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return acc, nil
}

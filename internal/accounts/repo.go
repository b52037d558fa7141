package accounts

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no account matches a lookup.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the e-mail is already registered.
	ErrDuplicateEmail = errors.New("e-mail already registered")
)

// Repo defines persistence operations for accounts.
type Repo interface {
	List(ctx context.Context) ([]Account, error)
	FindByEmail(ctx context.Context, email string) (Account, error)
	Append(ctx context.Context, acc Account) error
}

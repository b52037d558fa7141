package accounts

import (
	"context"
	"strings"

	"resume-builder/internal/shared/storage/docstore"
)

const accountsFile = "accounts.json"

// FileRepo stores accounts in one JSON array document. Appends go through
// the store's process-wide lock as a read-modify-write of the whole
// collection; lookups read lock-free and may miss a concurrent append.
type FileRepo struct {
	Store *docstore.Store
}

// NewFileRepo constructs a FileRepo over the given document store.
func NewFileRepo(store *docstore.Store) *FileRepo {
	return &FileRepo{Store: store}
}

// List returns every account in the collection.
func (r *FileRepo) List(ctx context.Context) ([]Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var accs []Account
	if err := r.Store.LoadCollection(accountsFile, &accs); err != nil {
		return nil, err
	}
	return accs, nil
}

// FindByEmail scans for an account whose e-mail matches case-insensitively.
func (r *FileRepo) FindByEmail(ctx context.Context, email string) (Account, error) {
	accs, err := r.List(ctx)
	if err != nil {
		return Account{}, err
	}
	for _, acc := range accs {
		if strings.EqualFold(acc.Email, email) {
			return acc, nil
		}
	}
	return Account{}, ErrNotFound
}

// Append adds a new account, enforcing e-mail uniqueness inside the
// collection lock.
func (r *FileRepo) Append(ctx context.Context, acc Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var accs []Account
	return r.Store.MutateCollection(accountsFile, &accs, func() error {
		for _, existing := range accs {
			if strings.EqualFold(existing.Email, acc.Email) {
				return ErrDuplicateEmail
			}
		}
		accs = append(accs, acc)
		return nil
	})
}

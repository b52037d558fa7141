// Package accounts manages user registration and credential checks over
// the file-backed accounts collection.
package accounts

import "time"

// Account is a registered user. The e-mail is stored lower-cased and is
// unique across the collection. Accounts are never mutated or deleted.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

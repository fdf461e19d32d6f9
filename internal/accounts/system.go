package accounts

import "context"

// System defines the public contract for credential store operations.
type System interface {
	Handler() *Handler

	// Register hashes the password and creates the account. Uniqueness
	// is enforced by the storage layer, never by a check-then-insert.
	Register(ctx context.Context, username, password string) error

	// Verify reports whether the credentials match a stored account.
	// Both false cases (unknown username, wrong password) are
	// indistinguishable to the caller and cost comparable work.
	Verify(ctx context.Context, username, password string) (bool, error)
}

// Package accounts implements the credential store that gates the
// screening pipeline: registration with salted password hashing, login
// verification, and the principal identity attached to authenticated
// requests.
package accounts

import (
	"context"
	"time"
)

// Account is one registered user. The store never holds a plaintext
// password, only a PHC-encoded argon2id hash, and the hash never leaves
// the repository layer. Accounts are append-only: no delete or update
// operation is exposed.
type Account struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Principal is the authenticated identity attached to a request by the
// session layer. Core operations receive it explicitly instead of
// reading ambient login state.
type Principal struct {
	Username string
}

type principalKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the principal from a context, if present.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

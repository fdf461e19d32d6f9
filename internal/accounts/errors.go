package accounts

import (
	"errors"
	"net/http"
)

var (
	// ErrUsernameTaken indicates a registration conflict on an existing
	// username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is the single error reported for any failed
	// login. It deliberately does not distinguish an unknown username
	// from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrStoreUnavailable indicates the underlying storage could not be
	// reached; safe to retry, never treated as "no match".
	ErrStoreUnavailable = errors.New("credential store unavailable")
	// ErrMalformedInput indicates an empty or oversized username or password.
	ErrMalformedInput = errors.New("username and password required")

	errNotFound = errors.New("account not found")
)

// MapHTTPStatus maps account domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

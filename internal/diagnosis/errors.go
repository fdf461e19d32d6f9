package diagnosis

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation indicates malformed or out-of-range screening input.
	ErrValidation = errors.New("screening input invalid")
	// ErrArtifactUnavailable indicates the model artifact could not be
	// resolved; the caller decides whether to retry.
	ErrArtifactUnavailable = errors.New("model artifact unavailable")
)

// MapHTTPStatus maps diagnosis domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrValidation) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrArtifactUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

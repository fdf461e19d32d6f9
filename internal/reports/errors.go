package reports

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("report not found")
	ErrForbidden        = errors.New("report belongs to another account")
	ErrRenderFailed     = errors.New("report rendering failed")
	ErrStoreUnavailable = errors.New("report store unavailable")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

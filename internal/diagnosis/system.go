package diagnosis

import (
	"context"

	"github.com/naz99/Autism-App/internal/screening"
)

// System defines the public contract for diagnosis operations.
type System interface {
	Handler() *Handler

	// Diagnose validates and scores one screening input against the
	// shared model artifact. Stateless and deterministic: identical
	// input against the same artifact always yields the same label.
	Diagnose(ctx context.Context, input screening.Input) (*Result, error)
}

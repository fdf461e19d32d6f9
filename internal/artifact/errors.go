package artifact

import "errors"

var (
	// ErrMissing indicates an artifact blob does not exist in storage.
	ErrMissing = errors.New("model artifact missing")
	// ErrCorrupt indicates an artifact blob exists but is malformed or
	// inconsistent with the screening schema.
	ErrCorrupt = errors.New("model artifact corrupt")
)

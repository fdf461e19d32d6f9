// Package storage provides object storage for model artifacts and
// rendered reports, with filesystem and Azure Blob Storage backends.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/naz99/Autism-App/pkg/lifecycle"
)

// System manages object storage operations and lifecycle coordination.
type System interface {
	// Start registers a startup hook that initializes the backing store.
	Start(lc *lifecycle.Coordinator) error
	// Upload writes data to an object at the given key with the specified
	// content type.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns a stream for the object at the given key. The
	// caller must close the reader. Returns ErrNotFound if the object
	// does not exist.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object at the given key. Returns ErrNotFound if
	// the object does not exist.
	Delete(ctx context.Context, key string) error
	// Exists reports whether an object exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
	// List returns up to max objects under prefix whose keys sort after
	// marker, in lexicographic key order.
	List(ctx context.Context, prefix, marker string, max int32) (*ListResult, error)
}

// Object describes a stored object.
type Object struct {
	Key        string    `json:"key"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ListResult is one page of a key listing. NextMarker is empty when the
// listing is exhausted.
type ListResult struct {
	Objects    []Object `json:"objects"`
	NextMarker string   `json:"next_marker,omitempty"`
}

// New creates a storage system for the configured backend.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Backend {
	case BackendFilesystem:
		return newFilesystem(cfg, logger)
	case BackendAzure:
		return newAzure(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}

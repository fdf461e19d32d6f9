package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/naz99/Autism-App/pkg/lifecycle"
	"github.com/naz99/Autism-App/pkg/storage"
)

// Handle is the explicitly owned, lazily-initialized artifact reference
// shared by all diagnosis requests. The first Resolve loads and caches
// the pair; concurrent first callers share a single load. After a
// successful load the artifact is immutable and read without locking.
type Handle struct {
	source    storage.System
	modelKey  string
	scalerKey string
	logger    *slog.Logger

	group   singleflight.Group
	current atomic.Pointer[Artifact]
}

// NewHandle creates a Handle that loads the pair from source under the
// given keys. No I/O happens until Resolve or Start.
func NewHandle(source storage.System, modelKey, scalerKey string, logger *slog.Logger) *Handle {
	return &Handle{
		source:    source,
		modelKey:  modelKey,
		scalerKey: scalerKey,
		logger:    logger.With("system", "artifact"),
	}
}

// Resolve returns the cached artifact, loading it on first use. A failed
// load caches nothing, so a later call retries against storage.
func (h *Handle) Resolve(ctx context.Context) (*Artifact, error) {
	if a := h.current.Load(); a != nil {
		return a, nil
	}

	v, err, _ := h.group.Do("load", func() (any, error) {
		if a := h.current.Load(); a != nil {
			return a, nil
		}

		a, err := h.load(ctx)
		if err != nil {
			return nil, err
		}

		h.current.Store(a)
		return a, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Artifact), nil
}

// Ready reports whether the artifact has been loaded.
func (h *Handle) Ready() bool {
	return h.current.Load() != nil
}

// Invalidate discards the cached artifact; the next Resolve reloads the
// pair from storage. In-flight requests keep the reference they already
// resolved.
func (h *Handle) Invalidate() {
	h.current.Store(nil)
	h.logger.Info("model artifact invalidated")
}

// Start registers a startup hook that warms the artifact. A load failure
// is logged, not fatal: the diagnosis capability stays unavailable while
// unrelated capabilities keep serving.
func (h *Handle) Start(lc *lifecycle.Coordinator) error {
	h.logger.Info("starting artifact system", "model", h.modelKey, "scaler", h.scalerKey)

	lc.OnStartup(func() {
		if _, err := h.Resolve(lc.Context()); err != nil {
			h.logger.Error("model artifact load failed", "error", err)
		}
	})

	return nil
}

func (h *Handle) load(ctx context.Context) (*Artifact, error) {
	var model, scaler []byte

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := h.fetch(ctx, h.modelKey)
		if err != nil {
			return err
		}
		model = b
		return nil
	})
	g.Go(func() error {
		b, err := h.fetch(ctx, h.scalerKey)
		if err != nil {
			return err
		}
		scaler = b
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a, err := Decode(model, scaler)
	if err != nil {
		return nil, err
	}

	h.logger.Info(
		"model artifact loaded",
		"version", a.Version(),
		"trees", len(a.Forest.Trees),
	)
	return a, nil
}

func (h *Handle) fetch(ctx context.Context, key string) ([]byte, error) {
	rc, err := h.source.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, key)
		}
		return nil, fmt.Errorf("fetch artifact %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", key, err)
	}

	return data, nil
}

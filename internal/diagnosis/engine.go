package diagnosis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/artifact"
	"github.com/naz99/Autism-App/internal/screening"
)

type engine struct {
	artifacts *artifact.Handle
	auth      *accounts.TokenIssuer
	logger    *slog.Logger
}

// New creates a diagnosis engine backed by the shared artifact handle.
func New(artifacts *artifact.Handle, auth *accounts.TokenIssuer, logger *slog.Logger) System {
	return &engine{
		artifacts: artifacts,
		auth:      auth,
		logger:    logger.With("system", "diagnosis"),
	}
}

func (e *engine) Handler() *Handler {
	return NewHandler(e, e.auth, e.logger)
}

func (e *engine) Diagnose(ctx context.Context, input screening.Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	art, err := e.artifacts.Resolve(ctx)
	if err != nil {
		// no retry here: the caller decides whether to retry against a
		// freshly reloaded artifact
		return nil, fmt.Errorf("%w: %v", ErrArtifactUnavailable, err)
	}

	class := art.Classify(art.Normalize(input.Encode()))

	label := Negative
	if class == 1 {
		label = Positive
	}

	e.logger.Info(
		"screening classified",
		"label", label.String(),
		"model_version", art.Version(),
	)

	return &Result{
		Label:        label,
		Input:        input,
		ModelVersion: art.Version(),
		DiagnosedAt:  time.Now().UTC(),
	}, nil
}

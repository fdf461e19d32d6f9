// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, storage, model artifacts)
// that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/naz99/Autism-App/internal/artifact"
	"github.com/naz99/Autism-App/internal/config"
	"github.com/naz99/Autism-App/pkg/database"
	"github.com/naz99/Autism-App/pkg/lifecycle"
	"github.com/naz99/Autism-App/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, object storage, and the classifier artifacts.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Artifacts *artifact.Handle
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	artifacts := artifact.NewHandle(store, cfg.Model.ModelKey, cfg.Model.ScalerKey, logger)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		Artifacts: artifacts,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// The artifact warm load runs after storage startup; a missing artifact is
// logged but does not block the service from serving account routes.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	if err := i.Artifacts.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("artifact start failed: %w", err)
	}
	return nil
}

package api

import (
	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/config"
	"github.com/naz99/Autism-App/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Auth    *accounts.TokenIssuer
	MaxBody int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Artifacts: infra.Artifacts,
		},
		Auth:    accounts.NewTokenIssuer(cfg.API.Auth.TokenSecret, cfg.API.Auth.TokenTTLDuration()),
		MaxBody: cfg.API.MaxBodySizeBytes(),
	}
}

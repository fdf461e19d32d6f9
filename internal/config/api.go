package config

import (
	"fmt"
	"os"
	"time"

	"github.com/naz99/Autism-App/pkg/formatting"
	"github.com/naz99/Autism-App/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "ASD_CORS_ENABLED",
	Origins:          "ASD_CORS_ORIGINS",
	AllowedMethods:   "ASD_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "ASD_CORS_ALLOWED_HEADERS",
	AllowCredentials: "ASD_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "ASD_CORS_MAX_AGE",
}

const (
	EnvAPIBasePath    = "ASD_API_BASE_PATH"
	EnvAPIMaxBodySize = "ASD_API_MAX_BODY_SIZE"
	EnvAuthSecret     = "ASD_AUTH_TOKEN_SECRET"
	EnvAuthTokenTTL   = "ASD_AUTH_TOKEN_TTL"
)

// APIConfig holds API routing, request limit, CORS, and auth settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Auth        AuthConfig            `toml:"auth"`
}

// AuthConfig holds token signing parameters. TokenSecret has no default
// and must come from config or ASD_AUTH_TOKEN_SECRET.
type AuthConfig struct {
	TokenSecret string `toml:"token_secret"`
	TokenTTL    string `toml:"token_ttl"`
}

// TokenTTLDuration returns TokenTTL as a time.Duration.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1 * 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and auth configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Auth.finalize(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	if overlay.Auth.TokenSecret != "" {
		c.Auth.TokenSecret = overlay.Auth.TokenSecret
	}
	if overlay.Auth.TokenTTL != "" {
		c.Auth.TokenTTL = overlay.Auth.TokenTTL
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
	if c.Auth.TokenTTL == "" {
		c.Auth.TokenTTL = "12h"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv(EnvAuthSecret); v != "" {
		c.Auth.TokenSecret = v
	}
	if v := os.Getenv(EnvAuthTokenTTL); v != "" {
		c.Auth.TokenTTL = v
	}
}

func (c *AuthConfig) finalize() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("token_secret is required")
	}
	if _, err := time.ParseDuration(c.TokenTTL); err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	return nil
}

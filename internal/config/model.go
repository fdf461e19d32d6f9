package config

import "os"

const (
	EnvModelKey  = "ASD_MODEL_KEY"
	EnvScalerKey = "ASD_MODEL_SCALER_KEY"
)

// ModelConfig names the storage keys of the classifier artifacts.
type ModelConfig struct {
	ModelKey  string `toml:"model_key"`
	ScalerKey string `toml:"scaler_key"`
}

// Finalize applies defaults and environment variable overrides.
func (c *ModelConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *ModelConfig) Merge(overlay *ModelConfig) {
	if overlay.ModelKey != "" {
		c.ModelKey = overlay.ModelKey
	}
	if overlay.ScalerKey != "" {
		c.ScalerKey = overlay.ScalerKey
	}
}

func (c *ModelConfig) loadDefaults() {
	if c.ModelKey == "" {
		c.ModelKey = "models/autism_rf.json"
	}
	if c.ScalerKey == "" {
		c.ScalerKey = "models/scaler.json"
	}
}

func (c *ModelConfig) loadEnv() {
	if v := os.Getenv(EnvModelKey); v != "" {
		c.ModelKey = v
	}
	if v := os.Getenv(EnvScalerKey); v != "" {
		c.ScalerKey = v
	}
}

package advisor

import (
	"fmt"
	"os"
	"time"
)

// Config holds the remote generation endpoint and pacing parameters.
type Config struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	Model          string `toml:"model"`
	RequestTimeout string `toml:"request_timeout"`
	PacingFloor    string `toml:"pacing_floor"`
}

// Env maps advisor config fields to environment variable names for override injection.
type Env struct {
	BaseURL        string
	APIKey         string
	Model          string
	RequestTimeout string
	PacingFloor    string
}

// Configured reports whether the remote capability can be attempted at all.
// An unconfigured advisor is the only generation failure that surfaces to
// the visitor.
func (c *Config) Configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// PacingFloorDuration returns PacingFloor as a time.Duration.
func (c *Config) PacingFloorDuration() time.Duration {
	d, _ := time.ParseDuration(c.PacingFloor)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
	if overlay.PacingFloor != "" {
		c.PacingFloor = overlay.PacingFloor
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = "sabia-4"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "30s"
	}
	if c.PacingFloor == "" {
		c.PacingFloor = "4.5s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.RequestTimeout != "" {
		if v := os.Getenv(env.RequestTimeout); v != "" {
			c.RequestTimeout = v
		}
	}
	if env.PacingFloor != "" {
		if v := os.Getenv(env.PacingFloor); v != "" {
			c.PacingFloor = v
		}
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.PacingFloor); err != nil {
		return fmt.Errorf("invalid pacing_floor: %w", err)
	}
	return nil
}

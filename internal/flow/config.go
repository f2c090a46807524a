package flow

import (
	"fmt"
	"os"
	"time"
)

// Config holds the session timing parameters: the results-phase countdown,
// the post-choice drafting delay, and session retention.
type Config struct {
	Countdown     string `toml:"countdown"`
	DraftingDelay string `toml:"drafting_delay"`
	SessionTTL    string `toml:"session_ttl"`
	SweepInterval string `toml:"sweep_interval"`
}

// Env maps flow config fields to environment variable names for override
// injection.
type Env struct {
	Countdown     string
	DraftingDelay string
	SessionTTL    string
	SweepInterval string
}

// CountdownDuration returns Countdown as a time.Duration.
func (c *Config) CountdownDuration() time.Duration {
	d, _ := time.ParseDuration(c.Countdown)
	return d
}

// DraftingDelayDuration returns DraftingDelay as a time.Duration.
func (c *Config) DraftingDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.DraftingDelay)
	return d
}

// SessionTTLDuration returns SessionTTL as a time.Duration.
func (c *Config) SessionTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionTTL)
	return d
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *Config) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
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
	if overlay.Countdown != "" {
		c.Countdown = overlay.Countdown
	}
	if overlay.DraftingDelay != "" {
		c.DraftingDelay = overlay.DraftingDelay
	}
	if overlay.SessionTTL != "" {
		c.SessionTTL = overlay.SessionTTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
}

func (c *Config) loadDefaults() {
	if c.Countdown == "" {
		c.Countdown = "900s"
	}
	if c.DraftingDelay == "" {
		c.DraftingDelay = "1.8s"
	}
	if c.SessionTTL == "" {
		c.SessionTTL = "30m"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "1m"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Countdown != "" {
		if v := os.Getenv(env.Countdown); v != "" {
			c.Countdown = v
		}
	}
	if env.DraftingDelay != "" {
		if v := os.Getenv(env.DraftingDelay); v != "" {
			c.DraftingDelay = v
		}
	}
	if env.SessionTTL != "" {
		if v := os.Getenv(env.SessionTTL); v != "" {
			c.SessionTTL = v
		}
	}
	if env.SweepInterval != "" {
		if v := os.Getenv(env.SweepInterval); v != "" {
			c.SweepInterval = v
		}
	}
}

func (c *Config) validate() error {
	fields := map[string]string{
		"countdown":      c.Countdown,
		"drafting_delay": c.DraftingDelay,
		"session_ttl":    c.SessionTTL,
		"sweep_interval": c.SweepInterval,
	}
	for name, value := range fields {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid %s: must be positive", name)
		}
	}
	return nil
}

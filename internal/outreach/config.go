package outreach

import (
	"fmt"
	"os"
)

// Config holds the messaging hand-off destinations. Only the agent has a
// fixed destination; companion links carry no number.
type Config struct {
	AgentNumber string `toml:"agent_number"`
}

// Env maps outreach config fields to environment variable names for
// override injection.
type Env struct {
	AgentNumber string
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
	if overlay.AgentNumber != "" {
		c.AgentNumber = overlay.AgentNumber
	}
}

func (c *Config) loadDefaults() {
	if c.AgentNumber == "" {
		c.AgentNumber = "5511981366140"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.AgentNumber != "" {
		if v := os.Getenv(env.AgentNumber); v != "" {
			c.AgentNumber = v
		}
	}
}

func (c *Config) validate() error {
	for _, r := range c.AgentNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid agent_number %q: digits only", c.AgentNumber)
		}
	}
	return nil
}

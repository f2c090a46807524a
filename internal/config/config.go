package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mcatur/sol/internal/advisor"
	"github.com/mcatur/sol/internal/flow"
	"github.com/mcatur/sol/internal/outreach"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvSolEnv             = "SOL_ENV"
	EnvSolShutdownTimeout = "SOL_SHUTDOWN_TIMEOUT"
	EnvSolVersion         = "SOL_VERSION"
	EnvSolCatalogPath     = "SOL_CATALOG_PATH"
)

var advisorEnv = &advisor.Env{
	BaseURL:        "SOL_ADVISOR_BASE_URL",
	APIKey:         "SOL_ADVISOR_API_KEY",
	Model:          "SOL_ADVISOR_MODEL",
	RequestTimeout: "SOL_ADVISOR_REQUEST_TIMEOUT",
	PacingFloor:    "SOL_ADVISOR_PACING_FLOOR",
}

var flowEnv = &flow.Env{
	Countdown:     "SOL_FLOW_COUNTDOWN",
	DraftingDelay: "SOL_FLOW_DRAFTING_DELAY",
	SessionTTL:    "SOL_FLOW_SESSION_TTL",
	SweepInterval: "SOL_FLOW_SWEEP_INTERVAL",
}

var outreachEnv = &outreach.Env{
	AgentNumber: "SOL_OUTREACH_AGENT_NUMBER",
}

// Config is the root configuration for the Sol service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	API             APIConfig       `toml:"api"`
	Advisor         advisor.Config  `toml:"advisor"`
	Flow            flow.Config     `toml:"flow"`
	Outreach        outreach.Config `toml:"outreach"`
	CatalogPath     string          `toml:"catalog_path"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the SOL_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvSolEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.CatalogPath != "" {
		c.CatalogPath = overlay.CatalogPath
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Advisor.Merge(&overlay.Advisor)
	c.Flow.Merge(&overlay.Flow)
	c.Outreach.Merge(&overlay.Outreach)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Advisor.Finalize(advisorEnv); err != nil {
		return fmt.Errorf("advisor: %w", err)
	}
	if err := c.Flow.Finalize(flowEnv); err != nil {
		return fmt.Errorf("flow: %w", err)
	}
	if err := c.Outreach.Finalize(outreachEnv); err != nil {
		return fmt.Errorf("outreach: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvSolShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvSolVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvSolCatalogPath); v != "" {
		c.CatalogPath = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvSolEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

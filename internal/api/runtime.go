package api

import (
	"github.com/mcatur/sol/internal/config"
	"github.com/mcatur/sol/internal/infrastructure"
)

// Runtime extends Infrastructure with the application configuration the
// domain systems draw from.
type Runtime struct {
	*infrastructure.Infrastructure
	Config *config.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
		},
		Config: cfg,
	}
}

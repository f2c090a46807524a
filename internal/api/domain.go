package api

import (
	"github.com/mcatur/sol/internal/advisor"
	"github.com/mcatur/sol/internal/catalog"
	"github.com/mcatur/sol/internal/flow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Catalog catalog.System
	Advisor advisor.System
	Flow    flow.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	cfg := runtime.Config

	catalogSystem, err := catalog.New(cfg.CatalogPath, runtime.Logger)
	if err != nil {
		return nil, err
	}

	// Without an endpoint the advisor stays clientless and reports
	// unavailable, which is the single generation failure that surfaces.
	var chat advisor.ChatClient
	if cfg.Advisor.Configured() {
		chat = advisor.NewClient(&cfg.Advisor)
	} else {
		runtime.Logger.Warn("advisor endpoint not configured, generation disabled")
	}

	advisorSystem := advisor.New(&cfg.Advisor, chat, advisor.NewClock(), runtime.Logger)

	flowSystem := flow.New(
		&cfg.Flow,
		&cfg.Outreach,
		catalogSystem,
		advisorSystem,
		flow.NewClock(),
		runtime.Logger,
	)
	flowSystem.StartSweeper(runtime.Lifecycle)

	return &Domain{
		Catalog: catalogSystem,
		Advisor: advisorSystem,
		Flow:    flowSystem,
	}, nil
}

// Package infrastructure provides core service initialization for
// application startup. It assembles the common dependencies (lifecycle
// coordination, logging) that domain systems require.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/mcatur/sol/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

// New creates the shared infrastructure. The service owns no database or
// file storage; session state lives in memory and expires with it.
func New() *Infrastructure {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// Package advisor implements the profile-to-offer adapter: one attempt
// against the remote generation capability, reconciliation of its response,
// deterministic fallback substitution, and the perceived-effort pacing floor.
package advisor

import (
	"context"
	"log/slog"

	"github.com/mcatur/sol/internal/offers"
	"github.com/mcatur/sol/internal/profile"
)

// System defines the public contract for offer generation.
type System interface {
	// Generate produces a consultation for a completed profile. It only
	// fails with ErrUnavailable when the remote capability cannot be
	// attempted at all; every other failure resolves to the fallback
	// consultation, so callers always reach a renderable result.
	Generate(ctx context.Context, p *profile.Profile) (*offers.Consultation, error)
}

type system struct {
	client ChatClient
	clock  Clock
	cfg    *Config
	logger *slog.Logger
}

// New creates an advisor system. When the config has no endpoint, client is
// left nil and Generate reports ErrUnavailable.
func New(cfg *Config, client ChatClient, clock Clock, logger *slog.Logger) System {
	return &system{
		client: client,
		clock:  clock,
		cfg:    cfg,
		logger: logger.With("system", "advisor"),
	}
}

func (s *system) Generate(ctx context.Context, p *profile.Profile) (*offers.Consultation, error) {
	if s.client == nil || !s.cfg.Configured() {
		return nil, ErrUnavailable
	}

	start := s.clock.Now()
	consultation := s.attempt(ctx, p)

	// Hold the result until the pacing floor has elapsed; a sub-second
	// "analysis" reads as canned. Skipped entirely when the remote call
	// already took longer.
	if remaining := s.cfg.PacingFloorDuration() - s.clock.Now().Sub(start); remaining > 0 {
		s.clock.Sleep(ctx, remaining)
	}

	return consultation, nil
}

// attempt runs the single remote call and reconciliation pass. Any failure
// is absorbed: it logs for operators and returns the fallback consultation.
func (s *system) attempt(ctx context.Context, p *profile.Profile) *offers.Consultation {
	messages, err := buildMessages(p)
	if err != nil {
		s.logger.Warn("prompt build failed, using fallback", "error", err)
		return offers.Fallback(p.Name())
	}

	content, err := s.client.Complete(ctx, messages)
	if err != nil {
		s.logger.Warn("generation call failed, using fallback", "error", err)
		return offers.Fallback(p.Name())
	}

	consultation, err := offers.Reconcile(content)
	if err != nil {
		s.logger.Warn("generation response rejected, using fallback", "error", err)
		return offers.Fallback(p.Name())
	}

	return consultation
}

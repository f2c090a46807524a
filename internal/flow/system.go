// Package flow implements the consultation flow controller: per-session
// state machines that walk the question catalog, hand completed profiles to
// the offer generator, and drive the results-phase interactions.
package flow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcatur/sol/internal/catalog"
	"github.com/mcatur/sol/internal/offers"
	"github.com/mcatur/sol/internal/outreach"
	"github.com/mcatur/sol/internal/profile"
	"github.com/mcatur/sol/pkg/lifecycle"
)

// reasonGenerationFailed is shown when generation cannot be attempted and
// the session falls back to the last question.
const reasonGenerationFailed = "Falha ao conectar com a IA. Tente novamente em instantes."

// Generator produces a consultation for a completed profile.
type Generator interface {
	Generate(ctx context.Context, p *profile.Profile) (*offers.Consultation, error)
}

// SubmitCommand is one answer submission for the current question. Guidance
// signals the sentinel path instead of a direct value.
type SubmitCommand struct {
	Value    string `json:"value"`
	Guidance bool   `json:"guidance"`
}

// ChooseCommand records the visitor's preferred offer by marketing name.
type ChooseCommand struct {
	Offer string `json:"offer"`
}

// OutreachCommand requests a composed hand-off message. Offer is optional;
// when empty the session's selected offer (or the recommendation) is used.
type OutreachCommand struct {
	Audience string `json:"audience"`
	Offer    string `json:"offer,omitempty"`
}

// OutreachResult carries the composed text and the messaging link wrapping
// it.
type OutreachResult struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// System defines the public contract for flow operations.
type System interface {
	Handler() *Handler
	StartSweeper(lc *lifecycle.Coordinator)

	Create(ctx context.Context) (*View, error)
	Find(ctx context.Context, id uuid.UUID) (*View, error)
	Start(ctx context.Context, id uuid.UUID) (*View, error)
	Submit(ctx context.Context, id uuid.UUID, cmd SubmitCommand) (*View, error)
	Guidance(ctx context.Context, id uuid.UUID) (*catalog.GuidancePayload, error)
	Choose(ctx context.Context, id uuid.UUID, cmd ChooseCommand) (*View, error)
	ClearChoice(ctx context.Context, id uuid.UUID) (*View, error)
	Restart(ctx context.Context, id uuid.UUID) (*View, error)
	Outreach(ctx context.Context, id uuid.UUID, cmd OutreachCommand) (*OutreachResult, error)
}

type system struct {
	cfg       *Config
	messaging *outreach.Config
	catalog   catalog.System
	generator Generator
	store     *store
	clock     Clock
	logger    *slog.Logger
}

// New creates a flow system over the given catalog and generator.
func New(
	cfg *Config,
	messaging *outreach.Config,
	cat catalog.System,
	generator Generator,
	clock Clock,
	logger *slog.Logger,
) System {
	return &system{
		cfg:       cfg,
		messaging: messaging,
		catalog:   cat,
		generator: generator,
		store:     newStore(),
		clock:     clock,
		logger:    logger.With("system", "flow"),
	}
}

// Handler returns the HTTP handler for session endpoints.
func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// StartSweeper begins periodic expiry of idle sessions.
func (s *system) StartSweeper(lc *lifecycle.Coordinator) {
	s.store.startSweeper(lc, s.cfg, s.clock, s.logger)
}

// Create registers a fresh session in the Intro phase.
func (s *system) Create(_ context.Context) (*View, error) {
	sess := newSession(uuid.New(), s.clock.Now())
	s.store.add(sess)
	s.logger.Info("session created", "session", sess.id)
	return s.view(sess), nil
}

// Find returns the current state view without mutating the session.
func (s *system) Find(_ context.Context, id uuid.UUID) (*View, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	return s.view(sess), nil
}

// Start begins the questionnaire. Only valid from the Intro phase.
func (s *system) Start(_ context.Context, id uuid.UUID) (*View, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.phase != PhaseIntro {
		return nil, fmt.Errorf("%w: start from %s", ErrWrongPhase, sess.phase)
	}

	sess.phase = PhaseQuestioning
	sess.index = 0
	return s.view(sess), nil
}

// Submit validates one answer for the current question. Rejections are not
// errors: they are recorded on the session and carried in the returned
// view, leaving the index unchanged. Accepting the final answer runs
// generation before returning, so the caller lands directly on Results.
func (s *system) Submit(ctx context.Context, id uuid.UUID, cmd SubmitCommand) (*View, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.phase != PhaseQuestioning {
		return nil, fmt.Errorf("%w: submit from %s", ErrWrongPhase, sess.phase)
	}

	q, err := s.catalog.At(sess.index)
	if err != nil {
		return nil, err
	}

	answer, rejection := profile.Validate(q, profile.Input{
		Value:    cmd.Value,
		Guidance: cmd.Guidance,
	})
	if rejection != nil {
		sess.rejection = rejection.Reason
		return s.view(sess), nil
	}

	sess.profile.Set(q.ID, answer)
	sess.rejection = ""

	if sess.index < s.catalog.Len()-1 {
		sess.index++
		return s.view(sess), nil
	}

	return s.generate(ctx, sess)
}

// generate runs the adapter for the completed profile while holding the
// session lock, so conflicting actions queue behind completion. The
// snapshot keeps the in-flight profile isolated from the session's own.
func (s *system) generate(ctx context.Context, sess *Session) (*View, error) {
	sess.phase = PhaseGenerating
	snapshot := sess.profile.Clone()

	consultation, err := s.generator.Generate(ctx, snapshot)
	if err != nil {
		// The only unrecoverable generation failure: back to the last
		// question so a corrected configuration can retry via resubmit.
		sess.phase = PhaseQuestioning
		sess.rejection = reasonGenerationFailed
		s.logger.Error("generation unavailable", "session", sess.id, "error", err)
		return nil, err
	}

	sess.enterResults(consultation, s.clock.Now(), s.cfg.CountdownDuration())
	s.logger.Info("session reached results", "session", sess.id)
	return s.view(sess), nil
}

// Guidance returns the current question's auxiliary payload without
// recording an answer.
func (s *system) Guidance(_ context.Context, id uuid.UUID) (*catalog.GuidancePayload, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.phase != PhaseQuestioning {
		return nil, fmt.Errorf("%w: guidance from %s", ErrWrongPhase, sess.phase)
	}

	q, err := s.catalog.At(sess.index)
	if err != nil {
		return nil, err
	}
	if q.Guidance == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoGuidance, q.ID)
	}
	return q.Guidance, nil
}

// Choose records the visitor's preferred offer and opens the drafting
// window before the hand-off button arms.
func (s *system) Choose(_ context.Context, id uuid.UUID, cmd ChooseCommand) (*View, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.phase != PhaseResults {
		return nil, fmt.Errorf("%w: choose from %s", ErrWrongPhase, sess.phase)
	}
	if _, ok := sess.consultation.Find(cmd.Offer); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOffer, cmd.Offer)
	}

	sess.selected = cmd.Offer
	sess.postChoice = true
	sess.draftingUntil = s.clock.Now().Add(s.cfg.DraftingDelayDuration())
	return s.view(sess), nil
}

// ClearChoice returns the results screen to the choosing state.
func (s *system) ClearChoice(_ context.Context, id uuid.UUID) (*View, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.phase != PhaseResults {
		return nil, fmt.Errorf("%w: clear choice from %s", ErrWrongPhase, sess.phase)
	}

	sess.selected = ""
	sess.postChoice = false
	sess.draftingUntil = time.Time{}
	return s.view(sess), nil
}

// Restart discards all session state and returns to Intro. Valid from any
// phase and idempotent.
func (s *system) Restart(_ context.Context, id uuid.UUID) (*View, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.reset(s.clock.Now())
	return s.view(sess), nil
}

// Outreach composes the hand-off message and link for one audience. The
// explicit offer, then the session's selection, then the recommendation are
// tried in that order; composition itself never fails.
func (s *system) Outreach(_ context.Context, id uuid.UUID, cmd OutreachCommand) (*OutreachResult, error) {
	sess, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.phase != PhaseResults {
		return nil, fmt.Errorf("%w: outreach from %s", ErrWrongPhase, sess.phase)
	}

	audience, err := outreach.ParseAudience(cmd.Audience)
	if err != nil {
		return nil, err
	}

	chosen := cmd.Offer
	if chosen == "" {
		chosen = sess.selected
	}

	text := outreach.Compose(sess.profile, sess.consultation, chosen, audience)

	destination := ""
	if audience == outreach.AudienceAgent {
		destination = s.messaging.AgentNumber
	}

	return &OutreachResult{
		Text: text,
		URL:  outreach.Link(destination, text),
	}, nil
}

// locked fetches a session and returns it with its mutex held and its idle
// timer touched. Callers must unlock.
func (s *system) locked(id uuid.UUID) (*Session, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess.mu.Lock()
	sess.lastTouch = s.clock.Now()
	return sess, nil
}

// view projects the locked session into its rendering form.
func (s *system) view(sess *Session) *View {
	v := &View{
		ID:        sess.id.String(),
		Phase:     sess.phase,
		Rejection: sess.rejection,
	}

	switch sess.phase {
	case PhaseQuestioning:
		if q, err := s.catalog.At(sess.index); err == nil {
			v.Question = &QuestionView{
				Index:    sess.index,
				Total:    s.catalog.Len(),
				Question: q,
				Answered: sess.profile.Len(),
			}
		}
	case PhaseResults:
		now := s.clock.Now()
		seconds := sess.countdownRemaining(now)
		v.Results = &ResultsView{
			Consultation:     sess.consultation,
			Selected:         sess.selected,
			Subphase:         sess.subphase(now),
			CountdownSeconds: seconds,
			CountdownDisplay: formatCountdown(seconds),
			SocialProof:      rotatingProof(now),
		}
	}
	return v
}

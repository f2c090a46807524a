package flow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcatur/sol/internal/offers"
	"github.com/mcatur/sol/internal/profile"
)

// Session is the live state of one visitor's consultation run. All fields
// behind mu are owned by the flow system; handlers never touch them
// directly. The mutex is held across generation, so conflicting actions
// queue behind completion instead of corrupting the in-flight snapshot.
type Session struct {
	mu sync.Mutex

	id    uuid.UUID
	phase Phase

	// Questioning state.
	index     int
	profile   *profile.Profile
	rejection string

	// Results state.
	consultation  *offers.Consultation
	selected      string
	postChoice    bool
	draftingUntil time.Time
	deadline      time.Time

	lastTouch time.Time
}

func newSession(id uuid.UUID, now time.Time) *Session {
	s := &Session{id: id}
	s.reset(now)
	return s
}

// reset returns the session to a pristine Intro state, discarding the
// profile, consultation, and every transient buffer.
func (s *Session) reset(now time.Time) {
	s.phase = PhaseIntro
	s.index = 0
	s.profile = profile.New()
	s.rejection = ""
	s.consultation = nil
	s.selected = ""
	s.postChoice = false
	s.draftingUntil = time.Time{}
	s.deadline = time.Time{}
	s.lastTouch = now
}

// enterResults installs a consultation and arms the results-phase countdown
// and preference interaction state.
func (s *Session) enterResults(c *offers.Consultation, now time.Time, countdown time.Duration) {
	s.phase = PhaseResults
	s.consultation = c
	s.selected = ""
	s.postChoice = false
	s.draftingUntil = time.Time{}
	s.deadline = now.Add(countdown)
}

// subphase derives the preference interaction state from the clock rather
// than a background timer: the drafting window ends when draftingUntil
// passes.
func (s *Session) subphase(now time.Time) Subphase {
	if !s.postChoice {
		return SubphaseChoosing
	}
	if now.Before(s.draftingUntil) {
		return SubphaseDrafting
	}
	return SubphaseChosen
}

// countdownRemaining returns whole seconds left on the results countdown,
// clamped at zero.
func (s *Session) countdownRemaining(now time.Time) int {
	remaining := s.deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining / time.Second)
}

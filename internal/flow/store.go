package flow

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcatur/sol/pkg/lifecycle"
)

// store is the in-memory session registry. Sessions are independent; the
// store lock only guards the map itself.
type store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func newStore() *store {
	return &store{
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (st *store) add(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
}

func (st *store) get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// sweep drops sessions idle longer than ttl and returns how many were
// removed. A session whose mutex is held is mid-request, so it cannot be
// idle; TryLock skips it instead of stalling every lookup behind an
// in-flight generation.
func (st *store) sweep(now time.Time, ttl time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if !s.mu.TryLock() {
			continue
		}
		expired := now.Sub(s.lastTouch) > ttl
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// startSweeper registers a periodic expiry pass with the lifecycle
// coordinator. It runs until shutdown cancels the coordinator context.
func (st *store) startSweeper(
	lc *lifecycle.Coordinator,
	cfg *Config,
	clock Clock,
	logger *slog.Logger,
) {
	lc.OnShutdown(func() {
		ticker := time.NewTicker(cfg.SweepIntervalDuration())
		defer ticker.Stop()

		for {
			select {
			case <-lc.Context().Done():
				return
			case <-ticker.C:
				if removed := st.sweep(clock.Now(), cfg.SessionTTLDuration()); removed > 0 {
					logger.Info("expired sessions removed", "count", removed)
				}
			}
		}
	})
}

// Package session serializes intent dispatch over the transaction engine and
// layers the only time-driven behavior in the system on top of it: the
// inactivity auto-logout and cancelable delayed effects.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atm-sim/atm_sim/internal/engine"
	"github.com/atm-sim/atm_sim/internal/ledger"
)

const (
	// DefaultTimeout is how long an authenticated session may sit idle
	// before the card is ejected.
	DefaultTimeout = 3 * time.Minute

	// DefaultHistoryDepth is how many demo history records are generated per
	// account at first login.
	DefaultHistoryDepth = 10
)

// Config tunes a session.
type Config struct {
	Timeout      time.Duration
	HistoryDepth int
	Logger       *slog.Logger
}

// Session owns the live snapshot. Every intent is applied atomically under
// one mutex, so no intent ever observes a partially applied snapshot from
// another.
type Session struct {
	mu     sync.Mutex
	engine *engine.Engine
	store  *ledger.Store
	snap   engine.Snapshot
	cfg    Config

	idle    *time.Timer
	effects []*time.Timer
	closed  bool
}

// New creates a session in the initial unauthenticated state.
func New(eng *engine.Engine, store *ledger.Store, cfg Config) *Session {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HistoryDepth <= 0 {
		cfg.HistoryDepth = DefaultHistoryDepth
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Session{engine: eng, store: store, snap: engine.NewSnapshot(), cfg: cfg}
}

// Dispatch applies one intent to the snapshot.
func (s *Session) Dispatch(intent engine.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.applyLocked(intent)
}

// DispatchAfter schedules an intent to be dispatched after d. The effect is
// canceled if the screen changes before it fires, so stale choreography
// (card-read delays and the like) can never race a user-triggered intent.
func (s *Session) DispatchAfter(d time.Duration, intent engine.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || !s.removeEffectLocked(t) {
			return
		}
		s.applyLocked(intent)
	})
	s.effects = append(s.effects, t)
}

// Snapshot returns the current snapshot. Snapshots are copy-on-write: the
// returned value is never mutated by later dispatches.
func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Close stops the idle timer and any pending effects. Further dispatches are
// no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cancelEffectsLocked()
	s.stopIdleLocked()
}

func (s *Session) applyLocked(intent engine.Intent) {
	// Demo history is seeded once per user at login, outside the pure
	// transition function, and never touches balances.
	if auth, ok := intent.(engine.Authenticate); ok {
		if user, found := s.store.UserByPIN(auth.PIN); found {
			s.store.EnsureDemoHistory(user.ID, s.cfg.HistoryDepth)
		}
	}

	prev := s.snap
	s.snap = s.engine.Apply(prev, intent)

	if s.snap.Screen != prev.Screen {
		s.cancelEffectsLocked()
	}

	switch {
	case !s.snap.Authenticated:
		s.stopIdleLocked()
	case !prev.Authenticated || s.snap.Screen != prev.Screen:
		s.armIdleLocked()
	}

	s.cfg.Logger.Debug("intent applied",
		"intent", fmt.Sprintf("%T", intent),
		"screen", string(s.snap.Screen),
		"authenticated", s.snap.Authenticated,
	)
}

// armIdleLocked restarts the inactivity timer. Only one timer is ever live;
// re-arming cancels the previous one.
func (s *Session) armIdleLocked() {
	s.stopIdleLocked()
	s.idle = time.AfterFunc(s.cfg.Timeout, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || !s.snap.Authenticated {
			return
		}
		s.cfg.Logger.Info("inactivity timeout, ending session")
		s.applyLocked(engine.Logout{})
	})
}

func (s *Session) stopIdleLocked() {
	if s.idle != nil {
		s.idle.Stop()
		s.idle = nil
	}
}

func (s *Session) cancelEffectsLocked() {
	for _, t := range s.effects {
		t.Stop()
	}
	s.effects = nil
}

// removeEffectLocked reports whether t was still pending and removes it. A
// timer canceled by navigation has already been removed and must not fire.
func (s *Session) removeEffectLocked(t *time.Timer) bool {
	for i, pending := range s.effects {
		if pending == t {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			return true
		}
	}
	return false
}

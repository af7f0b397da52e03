// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/Web-Plus-Academy/lms-admin/internal/store"
)

// =============================================================================
// STATE
// =============================================================================

// State classifies the caller for a single guard evaluation.
type State int

const (
	// Unauthenticated means no valid session record exists.
	Unauthenticated State = iota
	// Authenticated means a record exists and is within its lifetime.
	Authenticated
	// Expired is transient: the lifetime elapsed and the record is about
	// to be (or was just) destroyed. Callers only ever observe it through
	// Evaluation.Expired.
	Expired
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "UNAUTHENTICATED"
	case Authenticated:
		return "AUTHENTICATED"
	case Expired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// DefaultLifetime is how long an admin session remains valid.
const DefaultLifetime = 12 * time.Hour

// Codec seals records before they reach the store. secure.Sealer
// implements it; tests may substitute a passthrough.
type Codec interface {
	Seal(plaintext string) (string, error)
	Open(value string) (string, error)
}

// =============================================================================
// GUARD
// =============================================================================

// Guard owns the session record. Decisions are pure functions of store
// state and wall-clock time, recomputed on every evaluation; nothing is
// cached between calls.
type Guard struct {
	kv       store.KV
	codec    Codec
	lifetime time.Duration

	// now is the clock, replaceable in tests.
	now func() time.Time

	mu sync.Mutex
}

// NewGuard builds a Guard over the shared state store.
func NewGuard(kv store.KV, codec Codec, lifetime time.Duration) *Guard {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Guard{kv: kv, codec: codec, lifetime: lifetime, now: time.Now}
}

// SetNowFunc replaces the guard's clock. Test hook.
func (g *Guard) SetNowFunc(now func() time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = now
}

// Lifetime reports the configured session lifetime.
func (g *Guard) Lifetime() time.Duration {
	return g.lifetime
}

// Establish writes a fresh record after a successful backend login.
func (g *Guard) Establish(subjectID, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec := Record{SubjectID: subjectID, Token: token, IssuedAt: g.now().UnixMilli()}
	plain, err := rec.encode()
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	sealed, err := g.codec.Seal(plain)
	if err != nil {
		return fmt.Errorf("failed to seal session record: %w", err)
	}
	if err := g.kv.Set(store.SessionKey, sealed); err != nil {
		return fmt.Errorf("failed to persist session record: %w", err)
	}
	return nil
}

// Logout destroys the session record. Idempotent: logging out with no
// session is a no-op.
func (g *Guard) Logout() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.kv.Remove(store.SessionKey)
}

// Current returns the stored record without expiry side effects. ok is
// false when the record is absent, malformed, or unsealable.
func (g *Guard) Current() (Record, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.load()
}

// load reads and decodes the record. Caller holds g.mu.
func (g *Guard) load() (Record, bool) {
	value, ok, err := g.kv.Get(store.SessionKey)
	if err != nil || !ok {
		return Record{}, false
	}
	plain, err := g.codec.Open(value)
	if err != nil {
		// Malformed or foreign-keyed records are absent; clear the
		// residue so the bad value cannot linger.
		_ = g.kv.Remove(store.SessionKey)
		return Record{}, false
	}
	rec, err := decodeRecord(plain)
	if err != nil {
		_ = g.kv.Remove(store.SessionKey)
		return Record{}, false
	}
	return rec, true
}

// =============================================================================
// EVALUATION AND EXPIRY
// =============================================================================

// Evaluation is the result of one guard evaluation.
type Evaluation struct {
	// State is Authenticated or Unauthenticated; Expired never escapes.
	State State
	// Record is valid only when State is Authenticated.
	Record Record
	// Expired is true when this evaluation performed the expiry
	// transition (the caller should show the timeout notice).
	Expired bool
}

// Evaluate is the lazy expiry check: it classifies the caller and, when
// the lifetime has elapsed, destroys the record in the same step. After
// Evaluate returns, an expired record is guaranteed absent.
func (g *Guard) Evaluate() Evaluation {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.load()
	if !ok {
		return Evaluation{State: Unauthenticated}
	}
	if g.now().Sub(rec.IssuedTime()) >= g.lifetime {
		_ = g.kv.Remove(store.SessionKey)
		return Evaluation{State: Unauthenticated, Expired: true}
	}
	return Evaluation{State: Authenticated, Record: rec}
}

// Remaining reports how long the current session has left. Zero when no
// valid session exists or the lifetime already elapsed.
func (g *Guard) Remaining() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.load()
	if !ok {
		return 0
	}
	remaining := g.lifetime - g.now().Sub(rec.IssuedTime())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expire performs the eager expiry transition. It reports whether a
// record was actually destroyed, making timer-fire and lazy-check
// idempotent with respect to each other.
func (g *Guard) Expire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.load(); !ok {
		return false
	}
	_ = g.kv.Remove(store.SessionKey)
	return true
}

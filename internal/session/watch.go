// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"time"
)

// Watch is the eager expiry timer: a cancellable handle armed for the
// exact remaining session duration. It must be cancelled when its owner
// is torn down so a stale timer cannot log out a since-replaced session.
type Watch struct {
	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
}

// StartWatch arms a timer that fires onExpire after the session's
// remaining lifetime. The callback runs only if this watch actually
// performs the expiry transition - if the lazy check got there first the
// timer degenerates into a no-op.
//
// When no session exists, the returned watch is inert. When the session
// is already past its lifetime, the transition happens immediately on the
// caller's goroutine.
func (g *Guard) StartWatch(onExpire func()) *Watch {
	w := &Watch{}

	if _, ok := g.Current(); !ok {
		return w
	}

	remaining := g.Remaining()
	if remaining <= 0 {
		if g.Expire() {
			onExpire()
		}
		return w
	}

	w.timer = time.AfterFunc(remaining, func() {
		w.mu.Lock()
		cancelled := w.cancelled
		w.mu.Unlock()
		if cancelled {
			return
		}
		if g.Expire() {
			onExpire()
		}
	})
	return w
}

// Cancel stops the timer. Safe to call on an inert watch and safe to
// call more than once.
func (w *Watch) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelled = true
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Web-Plus-Academy/lms-admin/internal/store"
)

// ===== ERRORS =====

var (
	// ErrSubmitInFlight rejects a second Submit while one is outstanding.
	ErrSubmitInFlight = errors.New("wizard: submission already in flight")

	// ErrNotReviewStep rejects Submit from any step but the terminal review.
	ErrNotReviewStep = errors.New("wizard: submit is only allowed from the review step")
)

// ValidationError reports an unmet step requirement. It is always
// locally recoverable; nothing reaches the backend.
type ValidationError struct {
	Step   int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Reason)
}

// ===== CONTROLLER =====

// SubmitFunc delivers a completed field bag to the backend. It is called
// at most once per Submit invocation and never retried automatically.
type SubmitFunc func(ctx context.Context, f Fields) error

// Controller drives one form instance against the shared store. All
// methods are safe for concurrent use, though in practice the UI event
// loop is the only caller.
type Controller struct {
	mu     sync.Mutex
	kv     store.KV
	form   *Form
	draft  Draft
	sendFn SubmitFunc

	submitting bool
}

// NewController binds a form definition to the store and a submission
// sink. Call Initialize before anything else.
func NewController(kv store.KV, form *Form, send SubmitFunc) *Controller {
	return &Controller{kv: kv, form: form, sendFn: send, draft: Draft{Step: 1, Fields: form.empty()}}
}

func (c *Controller) key() string { return store.DraftKey(c.form.ID) }

// Initialize restores the persisted draft if one exists and is well
// formed, otherwise starts from the canonical empty draft at step 1. A
// malformed stored draft is discarded, not repaired.
func (c *Controller) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = Draft{Step: 1, Fields: c.form.empty()}
	raw, ok, err := c.kv.Get(c.key())
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}
	if !ok {
		return nil
	}
	d, err := decodeDraft(c.form, raw)
	if err != nil {
		// Unreadable leftover from an older build. Drop it.
		_ = c.kv.Remove(c.key())
		return nil
	}
	c.draft = d
	return nil
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Step returns the 1-based index of the displayed step.
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Step
}

// StepCount returns the number of steps including the review.
func (c *Controller) StepCount() int { return len(c.form.Steps) }

// StepDef returns the definition of the displayed step.
func (c *Controller) StepDef() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Steps[c.draft.Step-1]
}

// Submitting reports whether a Submit call is outstanding. The shell
// uses it as the loading flag that disables re-submission.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// SetField writes value at p, recomputes derived fields, and persists
// the whole draft before returning. Writes land in call order. An
// undeclared path is a programming error and is rejected.
func (c *Controller) SetField(p Path, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.form.Declared(p) {
		return fmt.Errorf("wizard: field %q not declared on form %s", p, c.form.ID)
	}
	c.draft.Fields[p] = value
	if c.form.Derive != nil {
		c.form.Derive(c.draft.Fields)
	}
	return c.persistLocked()
}

// Value returns the current value at p.
func (c *Controller) Value(p Path) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Fields.Get(p)
}

// ValidateStep checks the given step's requirements against the current
// fields. Purely local; returns a *ValidationError on failure.
func (c *Controller) ValidateStep(step int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked(step)
}

func (c *Controller) validateLocked(step int) error {
	if step < 1 || step > len(c.form.Steps) {
		return &ValidationError{Step: step, Reason: "no such step"}
	}
	def := c.form.Steps[step-1]
	for _, p := range def.Required {
		if c.draft.Fields.Get(p) == "" {
			return &ValidationError{Step: step, Reason: fmt.Sprintf("%s is required", p)}
		}
	}
	if def.Check != nil {
		if err := def.Check(c.draft.Fields); err != nil {
			return &ValidationError{Step: step, Reason: err.Error()}
		}
	}
	return nil
}

// Advance validates the displayed step and, on success, moves forward
// (capped at the review step) and persists. On failure the draft is
// untouched and the validation error is returned for a notice.
func (c *Controller) Advance() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validateLocked(c.draft.Step); err != nil {
		return err
	}
	if c.draft.Step < len(c.form.Steps) {
		c.draft.Step++
		return c.persistLocked()
	}
	return nil
}

// Retreat moves back one step, floored at 1. Going back never
// validates.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draft.Step > 1 {
		c.draft.Step--
		return c.persistLocked()
	}
	return nil
}

// Submit delivers the draft to the backend. Only callable from the
// review step, and only while no other submission is outstanding. On
// success the draft key is removed and the wizard resets to the empty
// step-1 draft; on failure the draft is left exactly as it was so the
// caller can retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if c.draft.Step != len(c.form.Steps) {
		c.mu.Unlock()
		return ErrNotReviewStep
	}
	c.submitting = true
	fields := c.draft.Fields.Clone()
	c.mu.Unlock()

	err := c.sendFn(ctx, fields)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		return err
	}
	if rmErr := c.kv.Remove(c.key()); rmErr != nil {
		return fmt.Errorf("clear draft: %w", rmErr)
	}
	c.draft = Draft{Step: 1, Fields: c.form.empty()}
	return nil
}

// Clear is the user-initiated reset: the stored draft is removed and the
// wizard returns to the empty step-1 state.
func (c *Controller) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Remove(c.key()); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	c.draft = Draft{Step: 1, Fields: c.form.empty()}
	return nil
}

func (c *Controller) persistLocked() error {
	raw, err := encodeDraft(c.form, c.draft)
	if err != nil {
		return err
	}
	if err := c.kv.Set(c.key(), raw); err != nil {
		return fmt.Errorf("persist draft: %w", err)
	}
	return nil
}

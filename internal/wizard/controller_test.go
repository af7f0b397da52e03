// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Web-Plus-Academy/lms-admin/internal/store"
)

// fillStep sets every required field of step with plausible values.
func fillStep(t *testing.T, c *Controller, step int) {
	t.Helper()
	values := map[Path]string{
		StuEmail:      "ravi@example.com",
		StuPassword:   "secret123",
		StuFullName:   "Ravi Kumar",
		StuDOB:        "2004-06-15",
		StuGender:     "male",
		StuPhone:      "9876543210",
		StuDoorNo:     "12B",
		StuStreet:     "Gandhi Street",
		StuCity:       "Chennai",
		StuState:      "Tamil Nadu",
		StuPincode:    "600001",
		StuBatch:      "4",
		StuEnrollment: "2025-01-10",
		StuCourseName: "Full Stack Development",
	}
	for _, p := range StudentForm().Steps[step-1].Required {
		if p == StuUserID {
			continue // derived from the batch
		}
		require.NoError(t, c.SetField(p, values[p]))
	}
	if step == 1 {
		// userId derives from the batch, which belongs to step 4.
		require.NoError(t, c.SetField(StuBatch, values[StuBatch]))
	}
}

func newTestController(kv store.KV, send SubmitFunc) *Controller {
	if send == nil {
		send = func(context.Context, Fields) error { return nil }
	}
	return NewController(kv, StudentForm(), send)
}

func TestInitializeEmptyStore(t *testing.T) {
	c := newTestController(store.NewMemStore(), nil)
	require.NoError(t, c.Initialize())

	d := c.Draft()
	require.Equal(t, 1, d.Step)
	require.Len(t, d.Fields, len(StudentForm().Fields))
	for p, v := range d.Fields {
		require.Empty(t, v, p.String())
	}
}

func TestDraftRoundTrip(t *testing.T) {
	kv := store.NewMemStore()
	c := newTestController(kv, nil)
	require.NoError(t, c.Initialize())

	require.NoError(t, c.SetField(StuCity, "Chennai"))
	require.NoError(t, c.SetField(StuEmail, "a@b.io"))
	require.NoError(t, c.SetField(StuAvatar, "http://cdn/pic.png")) // optional field

	// Simulate a reload: a fresh controller over the same store.
	c2 := newTestController(kv, nil)
	require.NoError(t, c2.Initialize())
	require.Equal(t, "Chennai", c2.Value(StuCity))
	require.Equal(t, "a@b.io", c2.Value(StuEmail))
	require.Equal(t, "http://cdn/pic.png", c2.Value(StuAvatar))
	require.Equal(t, c.Draft().Fields, c2.Draft().Fields)
}

func TestStepSurvivesReload(t *testing.T) {
	kv := store.NewMemStore()
	c := newTestController(kv, nil)
	require.NoError(t, c.Initialize())
	fillStep(t, c, 1)
	require.NoError(t, c.Advance())

	c2 := newTestController(kv, nil)
	require.NoError(t, c2.Initialize())
	require.Equal(t, 2, c2.Step())
}

func TestMalformedDraftDiscarded(t *testing.T) {
	kv := store.NewMemStore()
	require.NoError(t, kv.Set(store.DraftKey("addStudent"), "{not json"))

	c := newTestController(kv, nil)
	require.NoError(t, c.Initialize())
	require.Equal(t, 1, c.Step())
	_, ok, err := kv.Get(store.DraftKey("addStudent"))
	require.NoError(t, err)
	require.False(t, ok, "malformed draft should be removed")
}

func TestOutOfRangeStepDiscarded(t *testing.T) {
	kv := store.NewMemStore()
	require.NoError(t, kv.Set(store.DraftKey("addStudent"), `{"currentStep":9,"fields":{}}`))

	c := newTestController(kv, nil)
	require.NoError(t, c.Initialize())
	require.Equal(t, 1, c.Step())
}

func TestUnknownKeysDropped(t *testing.T) {
	kv := store.NewMemStore()
	raw := `{"currentStep":1,"fields":{"email":"x@y.z","bogus":"1","address":{"city":"Salem","zz":"q"}}}`
	require.NoError(t, kv.Set(store.DraftKey("addStudent"), raw))

	c := newTestController(kv, nil)
	require.NoError(t, c.Initialize())
	d := c.Draft()
	require.Equal(t, "x@y.z", d.Fields.Get(StuEmail))
	require.Equal(t, "Salem", d.Fields.Get(StuCity))
	require.Len(t, d.Fields, len(StudentForm().Fields))
}

func TestAdvanceRequiresFields(t *testing.T) {
	c := newTestController(store.NewMemStore(), nil)
	require.NoError(t, c.Initialize())

	err := c.Advance()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, 1, verr.Step)
	require.Equal(t, 1, c.Step(), "failed advance must not move")

	// Step 1 minus the email stays blocked.
	require.NoError(t, c.SetField(StuBatch, "4"))
	require.NoError(t, c.SetField(StuPassword, "secret123"))
	require.ErrorAs(t, c.Advance(), &verr)
	require.Equal(t, 1, c.Step())

	require.NoError(t, c.SetField(StuEmail, "ravi@example.com"))
	require.NoError(t, c.Advance())
	require.Equal(t, 2, c.Step())
}

func TestAdvanceRunsStepCheck(t *testing.T) {
	c := newTestController(store.NewMemStore(), nil)
	require.NoError(t, c.Initialize())
	require.NoError(t, c.SetField(StuBatch, "4"))
	require.NoError(t, c.SetField(StuEmail, "not-an-address"))
	require.NoError(t, c.SetField(StuPassword, "secret123"))

	var verr *ValidationError
	require.ErrorAs(t, c.Advance(), &verr)
	require.Contains(t, verr.Reason, "email")
}

func TestAdvanceCapsAtReview(t *testing.T) {
	c := newTestController(store.NewMemStore(), nil)
	require.NoError(t, c.Initialize())
	for step := 1; step < c.StepCount(); step++ {
		fillStep(t, c, step)
		require.NoError(t, c.Advance())
	}
	require.Equal(t, c.StepCount(), c.Step())
	require.NoError(t, c.Advance())
	require.Equal(t, c.StepCount(), c.Step(), "review step is the cap")
}

func TestRetreatNeverValidates(t *testing.T) {
	c := newTestController(store.NewMemStore(), nil)
	require.NoError(t, c.Initialize())
	fillStep(t, c, 1)
	require.NoError(t, c.Advance())

	require.NoError(t, c.Retreat())
	require.Equal(t, 1, c.Step())
	require.NoError(t, c.Retreat())
	require.Equal(t, 1, c.Step(), "floored at 1")
}

func TestUndeclaredFieldRejected(t *testing.T) {
	c := newTestController(store.NewMemStore(), nil)
	require.NoError(t, c.Initialize())
	require.Error(t, c.SetField(Field("nope"), "x"))
}

func completeDraft(t *testing.T, c *Controller) {
	t.Helper()
	for step := 1; step < c.StepCount(); step++ {
		fillStep(t, c, step)
		require.NoError(t, c.Advance())
	}
}

func TestSubmitOnlyFromReview(t *testing.T) {
	c := newTestController(store.NewMemStore(), nil)
	require.NoError(t, c.Initialize())
	require.ErrorIs(t, c.Submit(context.Background()), ErrNotReviewStep)
}

func TestSubmitSuccessClearsDraft(t *testing.T) {
	kv := store.NewMemStore()
	calls := 0
	c := newTestController(kv, func(context.Context, Fields) error {
		calls++
		return nil
	})
	require.NoError(t, c.Initialize())
	completeDraft(t, c)

	require.NoError(t, c.Submit(context.Background()))
	require.Equal(t, 1, calls)
	require.Equal(t, 1, c.Step())
	for p, v := range c.Draft().Fields {
		require.Empty(t, v, p.String())
	}
	_, ok, err := kv.Get(store.DraftKey("addStudent"))
	require.NoError(t, err)
	require.False(t, ok, "draft key must be absent after success")
}

func TestSubmitFailureLeavesDraftByteIdentical(t *testing.T) {
	kv := store.NewMemStore()
	c := newTestController(kv, func(context.Context, Fields) error {
		return errors.New("backend down")
	})
	require.NoError(t, c.Initialize())
	completeDraft(t, c)

	before, ok, err := kv.Get(store.DraftKey("addStudent"))
	require.NoError(t, err)
	require.True(t, ok)
	beforeStep := c.Step()

	require.Error(t, c.Submit(context.Background()))

	after, ok, err := kv.Get(store.DraftKey("addStudent"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, before, after, "stored draft must be byte-identical")
	require.Equal(t, beforeStep, c.Step())
	require.False(t, c.Submitting())

	// And the retry path still works.
	c.sendFn = func(context.Context, Fields) error { return nil }
	require.NoError(t, c.Submit(context.Background()))
}

func TestSubmitRejectsWhileInFlight(t *testing.T) {
	kv := store.NewMemStore()
	release := make(chan struct{})
	started := make(chan struct{})
	c := newTestController(kv, func(context.Context, Fields) error {
		close(started)
		<-release
		return nil
	})
	require.NoError(t, c.Initialize())
	completeDraft(t, c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Submit(context.Background())
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("submission never started")
	}
	require.True(t, c.Submitting())
	require.ErrorIs(t, c.Submit(context.Background()), ErrSubmitInFlight)

	close(release)
	wg.Wait()
	require.False(t, c.Submitting())
}

func TestClearResets(t *testing.T) {
	kv := store.NewMemStore()
	c := newTestController(kv, nil)
	require.NoError(t, c.Initialize())
	require.NoError(t, c.SetField(StuCity, "Madurai"))

	require.NoError(t, c.Clear())
	require.Equal(t, 1, c.Step())
	require.Empty(t, c.Value(StuCity))
	require.Zero(t, kv.Len())
}

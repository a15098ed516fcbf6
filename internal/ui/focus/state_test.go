package focus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

type observerFunc func(entity.FocusChange)

func (f observerFunc) FocusChanged(_ context.Context, c entity.FocusChange) { f(c) }

func TestState_StartsUnfocused(t *testing.T) {
	s := NewState()
	id, ok := s.Focused()
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestState_SetFocusedDoesNotValidate(t *testing.T) {
	s := NewState()
	s.SetFocused(context.Background(), "not-registered")

	id, ok := s.Focused()
	assert.True(t, ok)
	assert.Equal(t, entity.ElementID("not-registered"), id)
}

func TestState_NotifiesSynchronouslyInOrder(t *testing.T) {
	ctx := context.Background()
	s := NewState()

	var order []string
	s.Subscribe(observerFunc(func(entity.FocusChange) { order = append(order, "first") }))
	s.Subscribe(observerFunc(func(entity.FocusChange) { order = append(order, "second") }))

	s.SetFocused(ctx, "A")

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestState_ChangeCarriesPreviousAndCause(t *testing.T) {
	ctx := context.Background()
	s := NewState()

	var got []entity.FocusChange
	s.Subscribe(observerFunc(func(c entity.FocusChange) { got = append(got, c) }))

	s.SetFocused(ctx, "A")
	s.Change(ctx, "B", entity.FocusCauseNavigate, entity.DirectionRight)
	s.Clear(ctx)

	require.Len(t, got, 3)
	assert.Equal(t, entity.FocusChange{Previous: "", Current: "A", Cause: entity.FocusCauseExplicit}, got[0])
	assert.Equal(t, entity.FocusChange{
		Previous:  "A",
		Current:   "B",
		Cause:     entity.FocusCauseNavigate,
		Direction: entity.DirectionRight,
	}, got[1])
	assert.True(t, got[2].Cleared())
	assert.Equal(t, entity.ElementID("B"), got[2].Previous)
}

func TestState_SameIDIsNotAMutation(t *testing.T) {
	ctx := context.Background()
	s := NewState()
	calls := 0
	s.Subscribe(observerFunc(func(entity.FocusChange) { calls++ }))

	s.SetFocused(ctx, "A")
	s.SetFocused(ctx, "A")
	s.Clear(ctx)
	s.Clear(ctx)

	assert.Equal(t, 2, calls)
}

func TestState_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	s := NewState()
	calls := 0
	unsubscribe := s.Subscribe(observerFunc(func(entity.FocusChange) { calls++ }))

	s.SetFocused(ctx, "A")
	unsubscribe()
	unsubscribe()
	s.SetFocused(ctx, "B")

	assert.Equal(t, 1, calls)
}

func TestState_ObserverMayReadFocus(t *testing.T) {
	ctx := context.Background()
	s := NewState()

	var seen entity.ElementID
	s.Subscribe(observerFunc(func(entity.FocusChange) {
		seen, _ = s.Focused()
	}))

	s.SetFocused(ctx, "A")
	assert.Equal(t, entity.ElementID("A"), seen)
}

package focus

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

func el(id string, x, y float64) entity.FocusableElement {
	return entity.FocusableElement{ID: entity.ElementID(id), Center: entity.Point{X: x, Y: y}}
}

func ids(seq func(func(entity.FocusableElement) bool)) []entity.ElementID {
	var out []entity.ElementID
	for e := range seq {
		out = append(out, e.ID)
	}
	return out
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	registered, replaced := r.Register(ctx, el("A", 10, 20))
	assert.True(t, registered)
	assert.False(t, replaced)

	got, ok := r.Get("A")
	require.True(t, ok)
	assert.Equal(t, entity.Point{X: 10, Y: 20}, got.Center)
	assert.True(t, r.Has("A"))
	assert.Equal(t, 1, r.Len())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_EmptyIDIsIgnored(t *testing.T) {
	r := NewRegistry(nil)

	registered, _ := r.Register(context.Background(), el("", 0, 0))

	assert.False(t, registered)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ReRegisterReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)
	r.Register(ctx, el("A", 0, 0))
	r.Register(ctx, el("B", 0, 100))

	_, replaced := r.Register(ctx, el("A", 50, 50))
	assert.True(t, replaced)

	got, _ := r.Get("A")
	assert.Equal(t, entity.Point{X: 50, Y: 50}, got.Center, "last write wins")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []entity.ElementID{"A", "B"}, ids(r.All()))
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	r := NewRegistry(NewState())
	assert.False(t, r.Unregister(context.Background(), "ghost"))
}

func TestRegistry_UnregisterFocusedClearsFocus(t *testing.T) {
	ctx := context.Background()
	state := NewState()
	r := NewRegistry(state)
	r.Register(ctx, el("A", 0, 0))
	r.Register(ctx, el("B", 0, 100))

	var changes []entity.FocusChange
	state.Subscribe(observerFunc(func(c entity.FocusChange) { changes = append(changes, c) }))

	state.SetFocused(ctx, "A")
	require.True(t, r.Unregister(ctx, "A"))

	_, focused := state.Focused()
	assert.False(t, focused)
	require.Len(t, changes, 2)
	assert.Equal(t, entity.FocusCauseUnregister, changes[1].Cause)
	assert.True(t, changes[1].Cleared())
}

func TestRegistry_UnregisterOtherKeepsFocus(t *testing.T) {
	ctx := context.Background()
	state := NewState()
	r := NewRegistry(state)
	r.Register(ctx, el("A", 0, 0))
	r.Register(ctx, el("B", 0, 100))
	state.SetFocused(ctx, "A")

	r.Unregister(ctx, "B")

	id, ok := state.Focused()
	assert.True(t, ok)
	assert.Equal(t, entity.ElementID("A"), id)
}

func TestRegistry_ListByGroup(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)
	for _, e := range []entity.FocusableElement{
		{ID: "menu-1", Group: "menu"},
		{ID: "card-1", Group: "grid"},
		{ID: "menu-2", Group: "menu"},
		{ID: "free"},
	} {
		r.Register(ctx, e)
	}

	assert.Equal(t, []entity.ElementID{"menu-1", "menu-2"}, ids(r.ByGroup("menu")))
	assert.Equal(t, []entity.ElementID{"free"}, ids(r.ByGroup("")))
	assert.Empty(t, ids(r.ByGroup("sidebar")))
	assert.Equal(t, []string{"menu", "grid"}, r.Groups())
}

func TestRegistry_SequenceIsRestartableSnapshot(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)
	r.Register(ctx, el("A", 0, 0))
	r.Register(ctx, el("B", 0, 0))

	seq := r.All()
	first := ids(seq)

	// Mutating while iterating must not deadlock nor affect the running snapshot.
	var during []entity.ElementID
	for e := range seq {
		during = append(during, e.ID)
		r.Unregister(ctx, "B")
		r.Register(ctx, el("C", 0, 0))
	}

	assert.Equal(t, []entity.ElementID{"A", "B"}, first)
	assert.Equal(t, []entity.ElementID{"A", "B"}, during)
	assert.Equal(t, []entity.ElementID{"A", "C"}, ids(seq), "restarting takes a new snapshot")
}

func TestRegistry_EarlyBreak(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)
	for _, id := range []string{"A", "B", "C"} {
		r.Register(ctx, el(id, 0, 0))
	}

	var got []entity.ElementID
	for e := range r.All() {
		got = append(got, e.ID)
		if len(got) == 2 {
			break
		}
	}
	assert.True(t, slices.Equal([]entity.ElementID{"A", "B"}, got))
}

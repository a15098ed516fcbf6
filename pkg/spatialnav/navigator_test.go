package spatialnav_test

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spatialnav/pkg/spatialnav"
)

func element(id string, x, y float64) spatialnav.Element {
	return spatialnav.Element{ID: spatialnav.ElementID(id), Center: spatialnav.Point{X: x, Y: y}}
}

func focused(n *spatialnav.Navigator) spatialnav.ElementID {
	id, _ := n.Focused()
	return id
}

func TestScenario_DownMovesBelow(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)
	n.Register(ctx, element("A", 0, 0))
	n.Register(ctx, element("B", 0, 100))
	n.Register(ctx, element("C", 100, 0))
	require.True(t, n.Focus(ctx, "A"))

	n.Navigate(ctx, spatialnav.Down)

	assert.Equal(t, spatialnav.ElementID("B"), focused(n))
}

func TestScenario_FallbackToFirstElement(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)
	n.Register(ctx, element("A", 0, 0))

	n.Navigate(ctx, spatialnav.Right)

	assert.Equal(t, spatialnav.ElementID("A"), focused(n))
}

func TestScenario_UnregisterFocusedClears(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)
	n.Register(ctx, element("A", 0, 0))
	n.Focus(ctx, "A")

	n.Unregister(ctx, "A")

	_, ok := n.Focused()
	assert.False(t, ok)
}

func TestScenario_ModalLayerStealsNavigation(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)
	n.Register(ctx, element("F", 0, 0))
	a := element("A", 0, 50)
	b := element("B", 0, 200)
	b.Layer = 1
	n.Register(ctx, a)
	n.Register(ctx, b)
	n.Focus(ctx, "F")

	n.Navigate(ctx, spatialnav.Down)

	assert.Equal(t, spatialnav.ElementID("B"), focused(n))
}

func TestScenario_NoCandidateKeepsFocus(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)
	n.Register(ctx, element("A", 0, 0))
	n.Focus(ctx, "A")

	res := n.Navigate(ctx, spatialnav.Up)

	assert.False(t, res.Moved)
	assert.Equal(t, spatialnav.ElementID("A"), focused(n))
}

func TestScenario_GroupEscapeHatch(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)
	a := element("A", 0, 0)
	a.Group = "menu"
	b := element("B", 0, 100)
	b.Group = "grid"
	n.Register(ctx, a)
	n.Register(ctx, b)
	n.Focus(ctx, "A")

	res := n.Navigate(ctx, spatialnav.Down)

	assert.True(t, res.EscapedGroup)
	assert.Equal(t, spatialnav.ElementID("B"), focused(n))
}

func TestNavigators_AreIsolated(t *testing.T) {
	ctx := context.Background()
	first := spatialnav.New(ctx)
	second := spatialnav.New(ctx)

	first.Register(ctx, element("A", 0, 0))
	first.Focus(ctx, "A")

	assert.Equal(t, 0, second.Len())
	_, ok := second.Focused()
	assert.False(t, ok)
	assert.False(t, second.Focus(ctx, "A"))
}

func TestAutoFocus(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx, spatialnav.WithAutoFocus(true))

	n.Register(ctx, element("A", 0, 0))
	n.Register(ctx, element("B", 0, 100))

	assert.Equal(t, spatialnav.ElementID("A"), focused(n))
}

func TestSelectThroughKeys(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)

	var selected []spatialnav.ElementID
	play := element("play", 0, 0)
	play.OnSelect = spatialnav.SelectFunc(func(_ context.Context, id spatialnav.ElementID) {
		selected = append(selected, id)
	})
	n.Register(ctx, play)

	assert.True(t, n.HandleKey(ctx, "ArrowDown"), "fallback focuses play")
	assert.True(t, n.HandleKey(ctx, "enter"))
	assert.True(t, n.HandleKey(ctx, "13"))
	assert.Equal(t, []spatialnav.ElementID{"play", "play"}, selected)
}

func TestSetScoring_RejectsInvalid(t *testing.T) {
	n := spatialnav.New(context.Background())

	err := n.SetScoring(spatialnav.Scoring{PrimaryWeight: 1, LateralWeight: 5})
	require.Error(t, err)
	assert.Equal(t, spatialnav.DefaultScoring(), n.Scoring())

	err = n.SetScoring(spatialnav.Scoring{PrimaryWeight: 1000, LateralWeight: math.NaN()})
	require.Error(t, err)
	assert.Equal(t, spatialnav.DefaultScoring(), n.Scoring())

	err = n.SetScoring(spatialnav.Scoring{PrimaryWeight: 4, LateralWeight: 4})
	require.Error(t, err)
	assert.Equal(t, spatialnav.DefaultScoring(), n.Scoring())

	require.NoError(t, n.SetScoring(spatialnav.Scoring{PrimaryWeight: 10, LateralWeight: 1}))
	assert.Equal(t, 10.0, n.Scoring().PrimaryWeight)
}

func TestWithKeyMap(t *testing.T) {
	ctx := context.Background()
	km, err := spatialnav.NewKeyMap(map[spatialnav.Action][]string{"nav_down": {"s"}})
	require.NoError(t, err)

	n := spatialnav.New(ctx, spatialnav.WithKeyMap(km))
	n.Register(ctx, element("A", 0, 0))

	assert.False(t, n.HandleKey(ctx, "down"))
	assert.True(t, n.HandleKey(ctx, "s"))
}

// randomSession drives a navigator with a seeded random mix of
// register/unregister/direction/select/focus events and calls check after each.
func randomSession(t *testing.T, seed uint64, check func(n *spatialnav.Navigator, observed spatialnav.ElementID)) {
	t.Helper()
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(seed, seed*31+1))
	n := spatialnav.New(ctx)

	var observed spatialnav.ElementID
	n.Subscribe(spatialnav.ObserverFunc(func(_ context.Context, c spatialnav.FocusChange) {
		observed = c.Current
	}))

	dirs := []spatialnav.Direction{spatialnav.Up, spatialnav.Down, spatialnav.Left, spatialnav.Right}
	for range 400 {
		id := spatialnav.ElementID(fmt.Sprintf("e%d", rng.IntN(10)))
		switch rng.IntN(6) {
		case 0, 1:
			el := element(string(id), float64(rng.IntN(5)*100), float64(rng.IntN(5)*100))
			el.Layer = rng.IntN(2)
			if rng.IntN(3) == 0 {
				el.Group = "menu"
			}
			n.Register(ctx, el)
		case 2:
			n.Unregister(ctx, id)
		case 3:
			n.Navigate(ctx, dirs[rng.IntN(len(dirs))])
		case 4:
			n.Select(ctx)
		case 5:
			n.Focus(ctx, id)
		}
		check(n, observed)
	}
}

func TestProperty_SingleFocusAndObserverAgree(t *testing.T) {
	for seed := range uint64(20) {
		randomSession(t, seed, func(n *spatialnav.Navigator, observed spatialnav.ElementID) {
			id, ok := n.Focused()
			assert.Equal(t, observed, id, "observers see the single focused id")
			if ok {
				_, registered := n.Get(id)
				assert.True(t, registered, "focus always points at a registered element")
			}
		})
	}
}

func TestProperty_RightNeverMovesLeftOrStays(t *testing.T) {
	ctx := context.Background()
	for seed := range uint64(50) {
		rng := rand.New(rand.NewPCG(seed, 99))
		n := spatialnav.New(ctx)
		for i := range 15 {
			el := element(fmt.Sprintf("e%d", i), float64(rng.IntN(6)*80), float64(rng.IntN(6)*80))
			el.Layer = rng.IntN(3)
			n.Register(ctx, el)
		}
		n.Focus(ctx, "e0")
		start, _ := n.Get("e0")

		res := n.Navigate(ctx, spatialnav.Right)
		if !res.Moved {
			assert.Equal(t, spatialnav.ElementID("e0"), focused(n), "no candidate leaves focus unchanged")
			continue
		}
		target, ok := n.Get(res.To)
		require.True(t, ok)
		assert.Greater(t, target.Center.X, start.Center.X)
	}
}

func TestProperty_TieBreakIsDeterministic(t *testing.T) {
	ctx := context.Background()
	for range 20 {
		n := spatialnav.New(ctx)
		n.Register(ctx, element("F", 0, 0))
		n.Register(ctx, element("left-twin", -50, 100))
		n.Register(ctx, element("right-twin", 50, 100))
		n.Focus(ctx, "F")

		n.Navigate(ctx, spatialnav.Down)

		assert.Equal(t, spatialnav.ElementID("left-twin"), focused(n))
	}
}

func TestByGroupAndAll(t *testing.T) {
	ctx := context.Background()
	n := spatialnav.New(ctx)
	menu := element("menu-1", 0, 0)
	menu.Group = "menu"
	n.Register(ctx, menu)
	n.Register(ctx, element("card-1", 100, 0))

	var all, grouped []spatialnav.ElementID
	for el := range n.All() {
		all = append(all, el.ID)
	}
	for el := range n.ByGroup("menu") {
		grouped = append(grouped, el.ID)
	}

	assert.Equal(t, []spatialnav.ElementID{"menu-1", "card-1"}, all)
	assert.Equal(t, []spatialnav.ElementID{"menu-1"}, grouped)
}

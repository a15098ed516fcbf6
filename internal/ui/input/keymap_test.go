package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"ArrowUp":     "up",
		"arrowdown":   "down",
		" Left ":      "left",
		"DPAD_RIGHT":  "right",
		"Return":      "enter",
		" ":           "space",
		"dpad_center": "ok",
		"x":           "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}

func TestDefaultKeyMap_Lookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want Action
	}{
		{"up", ActionNavUp},
		{"ArrowUp", ActionNavUp},
		{"k", ActionNavUp},
		{"down", ActionNavDown},
		{"j", ActionNavDown},
		{"left", ActionNavLeft},
		{"right", ActionNavRight},
		{"enter", ActionSelect},
		{"OK", ActionSelect},
		{" ", ActionSelect},
		{"38", ActionNavUp},
		{"13", ActionSelect},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := km.Lookup(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := km.Lookup("q")
	assert.False(t, ok)
	_, ok = km.Lookup("")
	assert.False(t, ok)
}

func TestNewKeyMap_Conflict(t *testing.T) {
	_, err := NewKeyMap(map[Action][]string{
		ActionNavUp:   {"w"},
		ActionNavDown: {"W"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyConflict)
}

func TestNewKeyMap_UnknownAction(t *testing.T) {
	_, err := NewKeyMap(map[Action][]string{"zoom": {"z"}})
	assert.Error(t, err)
}

func TestNewKeyMap_CustomBindingsOverrideCodes(t *testing.T) {
	km, err := NewKeyMap(map[Action][]string{
		ActionNavUp:  {"w"},
		ActionSelect: {"38"},
	})
	require.NoError(t, err)

	got, ok := km.Lookup("W")
	require.True(t, ok)
	assert.Equal(t, ActionNavUp, got)

	got, ok = km.LookupCode(KeycodeArrowUp)
	require.True(t, ok)
	assert.Equal(t, ActionSelect, got)

	_, ok = km.Lookup("up")
	assert.False(t, ok, "named keys only come from bindings")

	assert.Equal(t, []string{"w"}, km.KeysFor(ActionNavUp))
}

func TestKeyMap_NilIsEmpty(t *testing.T) {
	var km *KeyMap
	_, ok := km.Lookup("up")
	assert.False(t, ok)
}

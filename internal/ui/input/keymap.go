package input

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrKeyConflict is returned when one key is bound to more than one action.
var ErrKeyConflict = errors.New("key bound to multiple actions")

// keyAliases folds the spellings hosts use for the same physical key.
var keyAliases = map[string]string{
	"arrowup":     "up",
	"arrowdown":   "down",
	"arrowleft":   "left",
	"arrowright":  "right",
	"return":      "enter",
	"kp_enter":    "enter",
	" ":           "space",
	"dpad_up":     "up",
	"dpad_down":   "down",
	"dpad_left":   "left",
	"dpad_right":  "right",
	"dpad_center": "ok",
	"select":      "ok",
}

// NormalizeKey lowercases a key name and folds known aliases.
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}

// DefaultBindings returns the default key names per action.
func DefaultBindings() map[Action][]string {
	return map[Action][]string{
		ActionNavUp:    {"up", "k"},
		ActionNavDown:  {"down", "j"},
		ActionNavLeft:  {"left", "h"},
		ActionNavRight: {"right", "l"},
		ActionSelect:   {"enter", "ok", "space"},
	}
}

// KeyMap resolves raw key names and key codes to actions.
type KeyMap struct {
	keys map[string]Action
}

// NewKeyMap builds a key map from per-action bindings.
// Numeric key codes from KeycodeToAction are always recognised; a binding
// may still remap a code by listing it as a decimal string.
func NewKeyMap(bindings map[Action][]string) (*KeyMap, error) {
	km := &KeyMap{keys: make(map[string]Action)}
	for code, action := range KeycodeToAction {
		km.keys[strconv.Itoa(code)] = action
	}

	explicit := make(map[string]Action)
	var conflicts []string

	actions := make([]Action, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, action := range actions {
		if _, ok := action.Direction(); !ok && action != ActionSelect {
			return nil, fmt.Errorf("unknown action %q", action)
		}
		for _, raw := range bindings[action] {
			key := NormalizeKey(raw)
			if key == "" {
				continue
			}
			if prev, ok := explicit[key]; ok && prev != action {
				conflicts = append(conflicts, fmt.Sprintf("%q: %s and %s", key, prev, action))
				continue
			}
			explicit[key] = action
			km.keys[key] = action
		}
	}

	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrKeyConflict, strings.Join(conflicts, ", "))
	}
	return km, nil
}

// DefaultKeyMap returns the key map for DefaultBindings.
func DefaultKeyMap() *KeyMap {
	km, err := NewKeyMap(DefaultBindings())
	if err != nil {
		panic(err) // default bindings are conflict free
	}
	return km
}

// Lookup returns the action bound to key.
func (km *KeyMap) Lookup(key string) (Action, bool) {
	if km == nil {
		return "", false
	}
	action, ok := km.keys[NormalizeKey(key)]
	return action, ok
}

// LookupCode returns the action bound to a numeric key code.
func (km *KeyMap) LookupCode(code int) (Action, bool) {
	return km.Lookup(strconv.Itoa(code))
}

// KeysFor lists the keys bound to action, sorted.
func (km *KeyMap) KeysFor(action Action) []string {
	var keys []string
	for k, a := range km.keys {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

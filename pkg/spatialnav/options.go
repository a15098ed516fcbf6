package spatialnav

import (
	"github.com/bnema/spatialnav/internal/application/usecase"
	"github.com/bnema/spatialnav/internal/ui/input"
)

type options struct {
	scoring      usecase.Scoring
	groupScoping bool
	activeGroup  string
	autoFocus    bool
	keymap       *input.KeyMap
}

func defaultOptions() options {
	return options{
		scoring:      usecase.DefaultScoring(),
		groupScoping: true,
	}
}

// Option configures a Navigator.
type Option func(*options)

// WithScoring sets the resolver weights. Invalid weights fall back to the defaults.
func WithScoring(s Scoring) Option {
	return func(o *options) {
		if s.Validate() == nil {
			o.scoring = s
		}
	}
}

// WithGroupScoping toggles same-group preference (enabled by default).
func WithGroupScoping(enabled bool) Option {
	return func(o *options) { o.groupScoping = enabled }
}

// WithActiveGroup sets the group used for the unfocused fallback.
func WithActiveGroup(group string) Option {
	return func(o *options) { o.activeGroup = group }
}

// WithAutoFocus focuses the first registered element when nothing is focused.
func WithAutoFocus(enabled bool) Option {
	return func(o *options) { o.autoFocus = enabled }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km *KeyMap) Option {
	return func(o *options) { o.keymap = km }
}

// DefaultScoring returns the default resolver weights.
func DefaultScoring() Scoring {
	return usecase.DefaultScoring()
}

// NewKeyMap builds key bindings from action names to key names.
func NewKeyMap(bindings map[Action][]string) (*KeyMap, error) {
	return input.NewKeyMap(bindings)
}

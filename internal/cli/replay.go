package cli

import (
	"context"
	"strings"

	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/pkg/spatialnav"
)

// ReplayStep is the outcome of one replayed key.
type ReplayStep struct {
	Key      string           `json:"key"`
	Handled  bool             `json:"handled"`
	From     entity.ElementID `json:"from,omitempty"`
	Focused  entity.ElementID `json:"focused,omitempty"`
	Selected bool             `json:"selected,omitempty"`
}

// ParseKeys splits a comma or whitespace separated key list.
func ParseKeys(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	keys := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			keys = append(keys, f)
		}
	}
	return keys
}

// Replay feeds keys to nav in order and reports the focus after each one.
// A handled key that leaves focus in place ran a selection handler.
func Replay(ctx context.Context, nav *spatialnav.Navigator, keys []string) []ReplayStep {
	steps := make([]ReplayStep, 0, len(keys))
	for _, key := range keys {
		from, _ := nav.Focused()
		handled := nav.HandleKey(ctx, key)
		to, _ := nav.Focused()
		steps = append(steps, ReplayStep{
			Key:      key,
			Handled:  handled,
			From:     from,
			Focused:  to,
			Selected: handled && from == to,
		})
	}
	return steps
}

// Package dispatcher routes navigation input to the focus state.
package dispatcher

import (
	"context"
	"sync"

	"github.com/bnema/spatialnav/internal/application/port"
	"github.com/bnema/spatialnav/internal/application/usecase"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/logging"
	"github.com/bnema/spatialnav/internal/ui/input"
)

// NavigateResult describes the outcome of a direction event.
type NavigateResult struct {
	Moved        bool
	From         entity.ElementID
	To           entity.ElementID
	Fallback     bool
	EscapedGroup bool
}

// NavigationDispatcher translates input events into focus transitions and
// selection callbacks. Every event is processed synchronously to completion;
// unknown keys, unknown ids and empty registries resolve to no-ops.
type NavigationDispatcher struct {
	elements port.ElementSource
	focus    port.FocusStore
	resolver *usecase.ResolveDirectionUseCase

	mu           sync.RWMutex
	keymap       *input.KeyMap
	groupScoping bool
	activeGroup  string
}

// NewNavigationDispatcher creates a new NavigationDispatcher.
func NewNavigationDispatcher(
	ctx context.Context,
	elements port.ElementSource,
	focus port.FocusStore,
	resolver *usecase.ResolveDirectionUseCase,
) *NavigationDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating navigation dispatcher")

	return &NavigationDispatcher{
		elements:     elements,
		focus:        focus,
		resolver:     resolver,
		keymap:       input.DefaultKeyMap(),
		groupScoping: true,
	}
}

// SetKeyMap replaces the key map used by HandleKey.
func (d *NavigationDispatcher) SetKeyMap(km *input.KeyMap) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keymap = km
}

// SetGroupScoping enables or disables same-group preference.
func (d *NavigationDispatcher) SetGroupScoping(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.groupScoping = enabled
}

// SetActiveGroup sets the group used when nothing is focused.
func (d *NavigationDispatcher) SetActiveGroup(group string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activeGroup = group
}

// HandleKey maps a raw key name or code and dispatches it.
// Returns false when the key is unbound or the action was a no-op.
func (d *NavigationDispatcher) HandleKey(ctx context.Context, key string) bool {
	d.mu.RLock()
	km := d.keymap
	d.mu.RUnlock()

	action, ok := km.Lookup(key)
	if !ok {
		logging.FromContext(ctx).Debug().Str("key", key).Msg("ignoring unbound key")
		return false
	}
	return d.Dispatch(ctx, action)
}

// Dispatch routes an action. Returns true if focus moved or a selection handler ran.
func (d *NavigationDispatcher) Dispatch(ctx context.Context, action input.Action) bool {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Msg("dispatching navigation action")

	if dir, ok := action.Direction(); ok {
		return d.Navigate(ctx, dir).Moved
	}

	switch action {
	case input.ActionSelect:
		return d.Select(ctx)
	default:
		log.Debug().Str("action", string(action)).Msg("unhandled navigation action")
		return false
	}
}

// Navigate resolves the next element in dir and focuses it.
// When nothing qualifies focus stays where it is.
func (d *NavigationDispatcher) Navigate(ctx context.Context, dir entity.Direction) NavigateResult {
	log := logging.FromContext(ctx)

	d.mu.RLock()
	scoping, group := d.groupScoping, d.activeGroup
	d.mu.RUnlock()

	from, _ := d.focus.Focused()
	in := usecase.ResolveDirectionInput{
		FocusedID:    from,
		Direction:    dir,
		GroupScoping: scoping,
	}
	if scoping {
		in.FallbackGroup = group
	}

	out := d.resolver.Resolve(ctx, in)
	if !out.Found {
		log.Debug().Str("direction", string(dir)).Str("focused", string(from)).Msg("navigation bumped at edge")
		return NavigateResult{From: from, To: from}
	}

	cause := entity.FocusCauseNavigate
	if out.Fallback {
		cause = entity.FocusCauseFallback
	}
	d.focus.Change(ctx, out.TargetID, cause, dir)

	return NavigateResult{
		Moved:        out.TargetID != from,
		From:         from,
		To:           out.TargetID,
		Fallback:     out.Fallback,
		EscapedGroup: out.EscapedGroup,
	}
}

// Select invokes the focused element's selection handler, if any.
func (d *NavigationDispatcher) Select(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	id, ok := d.focus.Focused()
	if !ok {
		log.Debug().Msg("select with nothing focused")
		return false
	}

	el, ok := d.elements.Get(id)
	if !ok || !el.CanSelect() {
		log.Debug().Str("element_id", string(id)).Msg("focused element is not selectable")
		return false
	}

	log.Debug().Str("element_id", string(id)).Msg("selecting element")
	el.OnSelect.Select(ctx, id)
	return true
}

// Focus focuses a registered element. Unknown ids are ignored.
func (d *NavigationDispatcher) Focus(ctx context.Context, id entity.ElementID) bool {
	return d.focusWithCause(ctx, id, entity.FocusCauseExplicit)
}

// AutoFocus focuses id only when nothing is focused yet.
func (d *NavigationDispatcher) AutoFocus(ctx context.Context, id entity.ElementID) bool {
	if _, focused := d.focus.Focused(); focused {
		return false
	}
	return d.focusWithCause(ctx, id, entity.FocusCauseAutoFocus)
}

func (d *NavigationDispatcher) focusWithCause(ctx context.Context, id entity.ElementID, cause entity.FocusCause) bool {
	if _, ok := d.elements.Get(id); !ok {
		logging.FromContext(ctx).Debug().Str("element_id", string(id)).Msg("ignoring focus request for unknown element")
		return false
	}
	d.focus.Change(ctx, id, cause, "")
	return true
}

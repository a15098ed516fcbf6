// Package focus provides the element registry and focus state of a navigation scope.
package focus

import (
	"context"
	"iter"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bnema/spatialnav/internal/application/port"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/logging"
)

// Registry maps element ids to their geometry and metadata.
// Iteration follows registration order; re-registering an id replaces the
// entry in place and keeps its original position.
type Registry struct {
	elements *orderedmap.OrderedMap[entity.ElementID, entity.FocusableElement]
	focus    port.FocusStore

	mu sync.RWMutex
}

// NewRegistry creates an empty registry.
// When focus is non-nil, unregistering the focused element clears it.
func NewRegistry(focus port.FocusStore) *Registry {
	return &Registry{
		elements: orderedmap.New[entity.ElementID, entity.FocusableElement](),
		focus:    focus,
	}
}

// Register inserts or replaces the element keyed by its id.
// Elements with an empty id are ignored and reported as not registered.
func (r *Registry) Register(ctx context.Context, el entity.FocusableElement) (registered, replaced bool) {
	log := logging.FromContext(ctx)

	if el.ID == "" {
		log.Debug().Msg("ignoring element with empty id")
		return false, false
	}

	r.mu.Lock()
	_, replaced = r.elements.Set(el.ID, el)
	r.mu.Unlock()

	log.Debug().
		Str("element_id", string(el.ID)).
		Str("group", el.Group).
		Int("layer", el.Layer).
		Float64("x", el.Center.X).
		Float64("y", el.Center.Y).
		Bool("replaced", replaced).
		Msg("element registered")

	return true, replaced
}

// Unregister removes the element. Unknown ids are a no-op.
// If the element was focused, focus is cleared.
func (r *Registry) Unregister(ctx context.Context, id entity.ElementID) bool {
	r.mu.Lock()
	_, removed := r.elements.Delete(id)
	r.mu.Unlock()

	if !removed {
		return false
	}

	logging.FromContext(ctx).Debug().Str("element_id", string(id)).Msg("element unregistered")

	if r.focus != nil {
		if focused, ok := r.focus.Focused(); ok && focused == id {
			r.focus.Change(ctx, "", entity.FocusCauseUnregister, "")
		}
	}
	return true
}

// Get returns the entry for id.
func (r *Registry) Get(id entity.ElementID) (entity.FocusableElement, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.elements.Get(id)
}

// Has reports whether id is registered.
func (r *Registry) Has(id entity.ElementID) bool {
	_, ok := r.Get(id)
	return ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.elements.Len()
}

// All yields registered elements in registration order.
// Each iteration works on a fresh snapshot, so the sequence can be
// restarted and the registry may be mutated while iterating.
func (r *Registry) All() iter.Seq[entity.FocusableElement] {
	return func(yield func(entity.FocusableElement) bool) {
		for _, el := range r.snapshot() {
			if !yield(el) {
				return
			}
		}
	}
}

// ByGroup yields registered elements of group in registration order.
func (r *Registry) ByGroup(group string) iter.Seq[entity.FocusableElement] {
	return func(yield func(entity.FocusableElement) bool) {
		for el := range r.All() {
			if el.Group != group {
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Groups returns the distinct non-empty groups in order of first appearance.
func (r *Registry) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for el := range r.All() {
		if el.Group == "" || seen[el.Group] {
			continue
		}
		seen[el.Group] = true
		groups = append(groups, el.Group)
	}
	return groups
}

func (r *Registry) snapshot() []entity.FocusableElement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.FocusableElement, 0, r.elements.Len())
	for pair := r.elements.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

package port

import (
	"context"
	"iter"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

// ElementSource is the read side of the element registry.
// The resolver only needs identity, geometry and registration order.
type ElementSource interface {
	// Get returns the element registered under id.
	Get(id entity.ElementID) (entity.FocusableElement, bool)
	// All yields a snapshot of registered elements in registration order.
	All() iter.Seq[entity.FocusableElement]
}

// FocusStore holds the currently focused element id.
// It does not validate ids against the registry.
type FocusStore interface {
	Focused() (entity.ElementID, bool)
	SetFocused(ctx context.Context, id entity.ElementID)
	Clear(ctx context.Context)
	// Change sets focus to id (empty clears it) and tags the change with its cause.
	Change(ctx context.Context, id entity.ElementID, cause entity.FocusCause, dir entity.Direction)
}

// FocusObserver is notified synchronously after every focus mutation.
type FocusObserver interface {
	FocusChanged(ctx context.Context, change entity.FocusChange)
}

// FocusObserverFunc adapts a function to FocusObserver.
type FocusObserverFunc func(ctx context.Context, change entity.FocusChange)

// FocusChanged calls f(ctx, change).
func (f FocusObserverFunc) FocusChanged(ctx context.Context, change entity.FocusChange) {
	f(ctx, change)
}

package entity

import "context"

// ElementID uniquely identifies a focusable element for its mounted lifetime.
type ElementID string

// Selectable is implemented by anything that reacts to a "select" action
// (enter on a keyboard, OK on a remote).
type Selectable interface {
	Select(ctx context.Context, id ElementID)
}

// SelectFunc adapts a plain function to the Selectable interface.
type SelectFunc func(ctx context.Context, id ElementID)

// Select calls f(ctx, id).
func (f SelectFunc) Select(ctx context.Context, id ElementID) {
	f(ctx, id)
}

// FocusableElement is a UI unit registered with its screen geometry.
type FocusableElement struct {
	ID     ElementID
	Center Point
	Size   Size
	// Group partitions elements into navigation zones ("menu", "grid").
	Group string
	// Layer orders overlays: higher layers take navigation precedence.
	Layer int
	// OnSelect is optional; nil means the element ignores select actions.
	OnSelect Selectable
}

// NewFocusableElement builds an element from its top-left bounding rectangle.
func NewFocusableElement(id ElementID, bounds Rect) FocusableElement {
	return FocusableElement{
		ID:     id,
		Center: bounds.Center(),
		Size:   bounds.Size(),
	}
}

// Bounds returns the bounding rectangle of the element.
func (e FocusableElement) Bounds() Rect {
	return RectFromCenter(e.Center, e.Size)
}

// CanSelect reports whether the element has a selection handler.
func (e FocusableElement) CanSelect() bool {
	return e.OnSelect != nil
}

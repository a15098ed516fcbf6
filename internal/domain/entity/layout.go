package entity

// Layout describes a screen of focusable elements, as loaded from a layout file.
type Layout struct {
	Name     string          `toml:"name" json:"name" jsonschema:"description=Human readable screen name"`
	Width    float64         `toml:"width" json:"width" jsonschema:"description=Screen width in pixels,minimum=0"`
	Height   float64         `toml:"height" json:"height" jsonschema:"description=Screen height in pixels,minimum=0"`
	Elements []LayoutElement `toml:"elements" json:"elements" jsonschema:"description=Focusable elements in registration order"`
}

// LayoutElement is one focusable element of a Layout, positioned by its top-left corner.
type LayoutElement struct {
	ID         string  `toml:"id" json:"id" jsonschema:"required,minLength=1"`
	X          float64 `toml:"x" json:"x"`
	Y          float64 `toml:"y" json:"y"`
	Width      float64 `toml:"width" json:"width" jsonschema:"minimum=0"`
	Height     float64 `toml:"height" json:"height" jsonschema:"minimum=0"`
	Group      string  `toml:"group,omitempty" json:"group,omitempty"`
	Layer      int     `toml:"layer,omitempty" json:"layer,omitempty"`
	Label      string  `toml:"label,omitempty" json:"label,omitempty"`
	Selectable bool    `toml:"selectable,omitempty" json:"selectable,omitempty"`
}

// Rect returns the element's bounding rectangle.
func (e LayoutElement) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// DisplayName returns the label if set, the id otherwise.
func (e LayoutElement) DisplayName() string {
	if e.Label != "" {
		return e.Label
	}
	return e.ID
}

// Element converts the layout entry to a FocusableElement.
// The selection handler is left to the caller.
func (e LayoutElement) Element() FocusableElement {
	el := NewFocusableElement(ElementID(e.ID), e.Rect())
	el.Group = e.Group
	el.Layer = e.Layer
	return el
}

// Find returns the layout element with the given id.
func (l *Layout) Find(id string) (LayoutElement, bool) {
	for _, e := range l.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return LayoutElement{}, false
}

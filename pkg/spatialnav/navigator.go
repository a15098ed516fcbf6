package spatialnav

import (
	"context"
	"iter"

	"github.com/bnema/spatialnav/internal/application/port"
	"github.com/bnema/spatialnav/internal/application/usecase"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/logging"
	"github.com/bnema/spatialnav/internal/ui/dispatcher"
	"github.com/bnema/spatialnav/internal/ui/focus"
	"github.com/bnema/spatialnav/internal/ui/input"
)

type (
	// Element is a focusable element with its screen geometry.
	Element = entity.FocusableElement
	// ElementID identifies an element.
	ElementID = entity.ElementID
	// Point is a screen position.
	Point = entity.Point
	// Size is an element extent.
	Size = entity.Size
	// Rect is a top-left positioned rectangle.
	Rect = entity.Rect
	// Direction is a navigation intent.
	Direction = entity.Direction
	// FocusChange is delivered to observers after every focus mutation.
	FocusChange = entity.FocusChange
	// Selectable reacts to select actions.
	Selectable = entity.Selectable
	// SelectFunc adapts a function to Selectable.
	SelectFunc = entity.SelectFunc
	// Observer is notified of focus changes.
	Observer = port.FocusObserver
	// ObserverFunc adapts a function to Observer.
	ObserverFunc = port.FocusObserverFunc
	// Scoring holds the directional score weights.
	Scoring = usecase.Scoring
	// NavigateResult describes the outcome of a direction event.
	NavigateResult = dispatcher.NavigateResult
	// Action is a navigation action produced from a key.
	Action = input.Action
	// KeyMap maps keys to actions.
	KeyMap = input.KeyMap
)

const (
	Up    = entity.DirectionUp
	Down  = entity.DirectionDown
	Left  = entity.DirectionLeft
	Right = entity.DirectionRight
)

// Navigator is one navigation scope: an element registry, its focus state,
// the directional resolver and the input dispatcher wired together.
// Navigators share nothing, so tests and nested screens stay isolated.
type Navigator struct {
	registry   *focus.Registry
	state      *focus.State
	resolver   *usecase.ResolveDirectionUseCase
	dispatcher *dispatcher.NavigationDispatcher

	autoFocus bool
}

// New creates a navigator with nothing registered and nothing focused.
func New(ctx context.Context, opts ...Option) *Navigator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx = logging.WithComponent(ctx, "spatialnav")

	state := focus.NewState()
	registry := focus.NewRegistry(state)
	resolver := usecase.NewResolveDirectionUseCase(registry, o.scoring)
	d := dispatcher.NewNavigationDispatcher(ctx, registry, state, resolver)
	d.SetGroupScoping(o.groupScoping)
	d.SetActiveGroup(o.activeGroup)
	if o.keymap != nil {
		d.SetKeyMap(o.keymap)
	}

	return &Navigator{
		registry:   registry,
		state:      state,
		resolver:   resolver,
		dispatcher: d,
		autoFocus:  o.autoFocus,
	}
}

// Register inserts or replaces an element. It returns false for an empty id.
// With auto-focus enabled, the element is focused if nothing else is.
func (n *Navigator) Register(ctx context.Context, el Element) bool {
	registered, _ := n.registry.Register(ctx, el)
	if registered && n.autoFocus {
		n.dispatcher.AutoFocus(ctx, el.ID)
	}
	return registered
}

// Unregister removes an element, clearing focus if it was focused.
func (n *Navigator) Unregister(ctx context.Context, id ElementID) bool {
	return n.registry.Unregister(ctx, id)
}

// Get returns a registered element.
func (n *Navigator) Get(id ElementID) (Element, bool) {
	return n.registry.Get(id)
}

// All yields registered elements in registration order.
func (n *Navigator) All() iter.Seq[Element] {
	return n.registry.All()
}

// ByGroup yields registered elements of group in registration order.
func (n *Navigator) ByGroup(group string) iter.Seq[Element] {
	return n.registry.ByGroup(group)
}

// Len returns the number of registered elements.
func (n *Navigator) Len() int {
	return n.registry.Len()
}

// Focused returns the focused id, if any.
func (n *Navigator) Focused() (ElementID, bool) {
	return n.state.Focused()
}

// Focus focuses a registered element. Unknown ids are ignored.
func (n *Navigator) Focus(ctx context.Context, id ElementID) bool {
	return n.dispatcher.Focus(ctx, id)
}

// Blur clears focus.
func (n *Navigator) Blur(ctx context.Context) {
	n.state.Clear(ctx)
}

// Navigate moves focus in dir.
func (n *Navigator) Navigate(ctx context.Context, dir Direction) NavigateResult {
	return n.dispatcher.Navigate(ctx, dir)
}

// Select invokes the focused element's handler.
func (n *Navigator) Select(ctx context.Context) bool {
	return n.dispatcher.Select(ctx)
}

// HandleKey maps a key name or code (e.g. "ArrowUp", "38", "enter") and dispatches it.
func (n *Navigator) HandleKey(ctx context.Context, key string) bool {
	return n.dispatcher.HandleKey(ctx, key)
}

// Dispatch routes an already mapped action.
func (n *Navigator) Dispatch(ctx context.Context, action Action) bool {
	return n.dispatcher.Dispatch(ctx, action)
}

// Subscribe registers a focus observer and returns its cancel function.
func (n *Navigator) Subscribe(o Observer) (unsubscribe func()) {
	return n.state.Subscribe(o)
}

// SetActiveGroup sets the group used when nothing is focused.
func (n *Navigator) SetActiveGroup(group string) {
	n.dispatcher.SetActiveGroup(group)
}

// SetGroupScoping toggles same-group preference.
func (n *Navigator) SetGroupScoping(enabled bool) {
	n.dispatcher.SetGroupScoping(enabled)
}

// SetKeyMap replaces the key bindings.
func (n *Navigator) SetKeyMap(km *KeyMap) {
	n.dispatcher.SetKeyMap(km)
}

// SetScoring replaces the resolver weights. Invalid weights are rejected.
func (n *Navigator) SetScoring(s Scoring) error {
	if err := s.Validate(); err != nil {
		return err
	}
	n.resolver.SetScoring(s)
	return nil
}

// Scoring returns the resolver weights in use.
func (n *Navigator) Scoring() Scoring {
	return n.resolver.Scoring()
}

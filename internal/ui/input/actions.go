package input

import "github.com/bnema/spatialnav/internal/domain/entity"

// Action is a navigation intent produced from raw input.
type Action string

const (
	ActionNavUp    Action = "nav_up"
	ActionNavDown  Action = "nav_down"
	ActionNavLeft  Action = "nav_left"
	ActionNavRight Action = "nav_right"
	ActionSelect   Action = "select"
)

// Actions lists every action in a stable order.
func Actions() []Action {
	return []Action{ActionNavUp, ActionNavDown, ActionNavLeft, ActionNavRight, ActionSelect}
}

// Direction returns the navigation direction of a movement action.
func (a Action) Direction() (entity.Direction, bool) {
	switch a {
	case ActionNavUp:
		return entity.DirectionUp, true
	case ActionNavDown:
		return entity.DirectionDown, true
	case ActionNavLeft:
		return entity.DirectionLeft, true
	case ActionNavRight:
		return entity.DirectionRight, true
	default:
		return "", false
	}
}

// ActionForDirection is the inverse of Action.Direction.
func ActionForDirection(d entity.Direction) (Action, bool) {
	switch d {
	case entity.DirectionUp:
		return ActionNavUp, true
	case entity.DirectionDown:
		return ActionNavDown, true
	case entity.DirectionLeft:
		return ActionNavLeft, true
	case entity.DirectionRight:
		return ActionNavRight, true
	default:
		return "", false
	}
}

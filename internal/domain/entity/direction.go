package entity

import "strings"

// Direction indicates the direction for focus navigation.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Directions lists every valid navigation direction.
func Directions() []Direction {
	return []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
}

// ParseDirection converts a user supplied name to a Direction.
// Returns false for anything that is not one of the four directions.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Valid()
}

// Valid reports whether d is one of the four navigation directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}

// Horizontal reports whether the primary axis of d is x.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}

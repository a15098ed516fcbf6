package entity

import "time"

// FocusChange describes a single focus mutation.
// An empty ElementID means "nothing focused".
type FocusChange struct {
	Previous  ElementID
	Current   ElementID
	Cause     FocusCause
	Direction Direction // set when Cause is FocusCauseNavigate or FocusCauseFallback
}

// Cleared reports whether the change left nothing focused.
func (c FocusChange) Cleared() bool {
	return c.Current == ""
}

// FocusCause identifies what triggered a focus change.
type FocusCause string

const (
	FocusCauseNavigate   FocusCause = "navigate"
	FocusCauseFallback   FocusCause = "fallback"
	FocusCauseExplicit   FocusCause = "explicit"
	FocusCauseAutoFocus  FocusCause = "auto_focus"
	FocusCauseUnregister FocusCause = "unregister"
)

// FocusTransition is a recorded focus change, used by trace persistence.
type FocusTransition struct {
	Session   string
	Seq       int
	From      ElementID
	To        ElementID
	Cause     FocusCause
	Direction Direction
	At        time.Time
}

// TraceSummary describes a recorded navigation session.
type TraceSummary struct {
	Session     string
	Layout      string
	Transitions int
	StartedAt   time.Time
}

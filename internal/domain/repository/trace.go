package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

// ErrTraceNotFound is returned when a trace session does not exist.
var ErrTraceNotFound = errors.New("trace session not found")

// TraceRepository persists recorded focus transitions.
type TraceRepository interface {
	// StartSession creates the session row. Starting an existing session is a no-op.
	StartSession(ctx context.Context, session, layout string, startedAt time.Time) error
	Record(ctx context.Context, transition entity.FocusTransition) error

	// ListSessions returns the most recent sessions first.
	ListSessions(ctx context.Context, limit int) ([]entity.TraceSummary, error)
	// Transitions returns the transitions of a session in sequence order.
	// Returns ErrTraceNotFound for unknown sessions.
	Transitions(ctx context.Context, session string) ([]entity.FocusTransition, error)
	DeleteSession(ctx context.Context, session string) error
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/domain/repository"
	"github.com/bnema/spatialnav/internal/logging"
)

const defaultSessionLimit = 20

const (
	insertSessionSQL = `INSERT INTO trace_sessions (id, layout, started_at) VALUES (?, ?, ?)
ON CONFLICT(id) DO NOTHING`
	insertTransitionSQL = `INSERT INTO focus_transitions (session_id, seq, from_id, to_id, cause, direction, at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	listSessionsSQL = `SELECT s.id, s.layout, s.started_at, COUNT(t.seq)
FROM trace_sessions s
LEFT JOIN focus_transitions t ON t.session_id = s.id
GROUP BY s.id
ORDER BY s.started_at DESC, s.id DESC
LIMIT ?`
	sessionExistsSQL  = `SELECT 1 FROM trace_sessions WHERE id = ?`
	listTransitionSQL = `SELECT seq, from_id, to_id, cause, direction, at
FROM focus_transitions WHERE session_id = ? ORDER BY seq`
	deleteSessionSQL = `DELETE FROM trace_sessions WHERE id = ?`
)

type traceRepo struct {
	db *sql.DB
}

// NewTraceRepository returns a TraceRepository backed by db.
// Timestamps are stored as unix milliseconds.
func NewTraceRepository(db *sql.DB) repository.TraceRepository {
	return &traceRepo{db: db}
}

func (r *traceRepo) StartSession(ctx context.Context, session, layout string, startedAt time.Time) error {
	if session == "" {
		return fmt.Errorf("session id cannot be empty")
	}
	logging.FromContext(ctx).Debug().Str("session", session).Str("layout", layout).Msg("starting trace session")

	if _, err := r.db.ExecContext(ctx, insertSessionSQL, session, layout, startedAt.UnixMilli()); err != nil {
		return fmt.Errorf("failed to insert trace session: %w", err)
	}
	return nil
}

func (r *traceRepo) Record(ctx context.Context, t entity.FocusTransition) error {
	_, err := r.db.ExecContext(ctx, insertTransitionSQL,
		t.Session, t.Seq, string(t.From), string(t.To), string(t.Cause), string(t.Direction), t.At.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record transition %d of %s: %w", t.Seq, t.Session, err)
	}
	return nil
}

func (r *traceRepo) ListSessions(ctx context.Context, limit int) ([]entity.TraceSummary, error) {
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	rows, err := r.db.QueryContext(ctx, listSessionsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trace sessions: %w", err)
	}
	defer rows.Close()

	var sessions []entity.TraceSummary
	for rows.Next() {
		var (
			s         entity.TraceSummary
			startedAt int64
		)
		if err := rows.Scan(&s.Session, &s.Layout, &startedAt, &s.Transitions); err != nil {
			return nil, err
		}
		s.StartedAt = time.UnixMilli(startedAt).UTC()
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *traceRepo) Transitions(ctx context.Context, session string) ([]entity.FocusTransition, error) {
	var one int
	if err := r.db.QueryRowContext(ctx, sessionExistsSQL, session).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", repository.ErrTraceNotFound, session)
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listTransitionSQL, session)
	if err != nil {
		return nil, fmt.Errorf("failed to query transitions: %w", err)
	}
	defer rows.Close()

	var transitions []entity.FocusTransition
	for rows.Next() {
		var (
			from, to, cause, dir string
			at                   int64
		)
		t := entity.FocusTransition{Session: session}
		if err := rows.Scan(&t.Seq, &from, &to, &cause, &dir, &at); err != nil {
			return nil, err
		}
		t.From = entity.ElementID(from)
		t.To = entity.ElementID(to)
		t.Cause = entity.FocusCause(cause)
		t.Direction = entity.Direction(dir)
		t.At = time.UnixMilli(at).UTC()
		transitions = append(transitions, t)
	}
	return transitions, rows.Err()
}

func (r *traceRepo) DeleteSession(ctx context.Context, session string) error {
	res, err := r.db.ExecContext(ctx, deleteSessionSQL, session)
	if err != nil {
		return fmt.Errorf("failed to delete trace session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", repository.ErrTraceNotFound, session)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/spatialnav/internal/application/port"
	"github.com/bnema/spatialnav/internal/logging"
)

// ErrTraceDBClosed is returned by TraceDB.DB after Close.
var ErrTraceDBClosed = errors.New("trace database is closed")

// TraceDB hands out the trace database connection, opening it on first use.
// Commands that never record or list traces never create the file.
// A failed open is remembered and returned on every later call.
type TraceDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	tried   bool
	closed  bool
}

var _ port.DatabaseProvider = (*TraceDB)(nil)

// NewTraceDB returns a provider for the trace database at path.
func NewTraceDB(path string) *TraceDB {
	return &TraceDB{path: path}
}

// DB returns the open connection, opening the database on the first call.
func (t *TraceDB) DB(ctx context.Context) (*sql.DB, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrTraceDBClosed
	}
	if !t.tried {
		t.tried = true
		t.db, t.openErr = Open(ctx, t.path)
		if t.openErr != nil {
			logging.FromContext(ctx).Error().Err(t.openErr).Str("path", t.path).Msg("trace database unavailable")
		}
	}
	if t.openErr != nil {
		return nil, fmt.Errorf("trace database: %w", t.openErr)
	}
	return t.db, nil
}

// Close closes the connection if one was opened. Later DB calls fail.
func (t *TraceDB) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.db == nil {
		return nil
	}
	db := t.db
	t.db = nil
	return db.Close()
}

// Opened reports whether a connection is currently open.
func (t *TraceDB) Opened() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.db != nil
}

// Path returns the database file path.
func (t *TraceDB) Path() string {
	return t.path
}

// Package port defines interfaces between the navigation use cases and their adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider provides access to the trace database connection.
// Implementations may open the database lazily on first access so commands
// that never record or read traces never touch SQLite.
type DatabaseProvider interface {
	// DB returns the database connection, initializing it if necessary.
	// Returns an error if initialization fails.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was initialized.
	Close() error

	// Opened reports whether a connection is currently open.
	Opened() bool
}

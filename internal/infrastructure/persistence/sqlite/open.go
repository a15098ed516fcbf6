package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/spatialnav/internal/logging"
	_ "github.com/ncruces/go-sqlite3/driver" // database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled sqlite build
)

const traceDirPerm = 0o750

// tracePragmas are applied to the single pooled connection after it opens.
var tracePragmas = []struct{ name, value string }{
	{"journal_mode", "WAL"},
	{"synchronous", "NORMAL"},
	{"busy_timeout", "5000"},
	// transitions are deleted with their session
	{"foreign_keys", "ON"},
}

// Open opens the focus trace database at path, creating the parent
// directory, and brings the schema up to date.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("trace database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), traceDirPerm); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open trace database: %w", err)
	}
	// One writer, and pragmas only stick to the connection they ran on.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("trace database opened")
	return db, nil
}

func prepare(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect to trace database: %w", err)
	}
	for _, p := range tracePragmas {
		stmt := fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("set pragma %s: %w", p.name, err)
		}
	}
	if err := RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrate trace database: %w", err)
	}
	return nil
}

// Package sqlite provides the SQLite focus trace store.
package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/spatialnav/internal/application/port"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/domain/repository"
)

// LazyTraceRepository wraps a trace repository with lazy database initialization.
type LazyTraceRepository struct {
	provider port.DatabaseProvider
	repo     repository.TraceRepository
	once     sync.Once
	initErr  error
}

// NewLazyTraceRepository creates a lazy-loading trace repository.
func NewLazyTraceRepository(provider port.DatabaseProvider) repository.TraceRepository {
	return &LazyTraceRepository{provider: provider}
}

func (r *LazyTraceRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewTraceRepository(db)
	})
	return r.initErr
}

func (r *LazyTraceRepository) StartSession(ctx context.Context, session, layout string, startedAt time.Time) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.StartSession(ctx, session, layout, startedAt)
}

func (r *LazyTraceRepository) Record(ctx context.Context, t entity.FocusTransition) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, t)
}

func (r *LazyTraceRepository) ListSessions(ctx context.Context, limit int) ([]entity.TraceSummary, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListSessions(ctx, limit)
}

func (r *LazyTraceRepository) Transitions(ctx context.Context, session string) ([]entity.FocusTransition, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Transitions(ctx, session)
}

func (r *LazyTraceRepository) DeleteSession(ctx context.Context, session string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteSession(ctx, session)
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/domain/repository"
	"github.com/bnema/spatialnav/internal/logging"
)

// RecordTraceUseCase persists focus changes of one navigation session.
// It is used as a focus observer; persistence failures are logged and
// never interrupt navigation.
type RecordTraceUseCase struct {
	repo    repository.TraceRepository
	session string
	layout  string
	now     func() time.Time

	mu  sync.Mutex
	seq int
}

// NewRecordTraceUseCase creates a recorder for session.
func NewRecordTraceUseCase(repo repository.TraceRepository, session, layout string) *RecordTraceUseCase {
	return &RecordTraceUseCase{
		repo:    repo,
		session: session,
		layout:  layout,
		now:     time.Now,
	}
}

// Session returns the recorded session id.
func (uc *RecordTraceUseCase) Session() string {
	return uc.session
}

// Start creates the session record.
func (uc *RecordTraceUseCase) Start(ctx context.Context) error {
	if err := uc.repo.StartSession(ctx, uc.session, uc.layout, uc.now()); err != nil {
		return fmt.Errorf("start trace session %s: %w", uc.session, err)
	}
	logging.FromContext(logging.WithSession(ctx, uc.session)).Debug().Msg("trace session started")
	return nil
}

// FocusChanged records one transition.
func (uc *RecordTraceUseCase) FocusChanged(ctx context.Context, change entity.FocusChange) {
	uc.mu.Lock()
	uc.seq++
	seq := uc.seq
	uc.mu.Unlock()

	t := entity.FocusTransition{
		Session:   uc.session,
		Seq:       seq,
		From:      change.Previous,
		To:        change.Current,
		Cause:     change.Cause,
		Direction: change.Direction,
		At:        uc.now(),
	}
	if err := uc.repo.Record(ctx, t); err != nil {
		logging.FromContext(logging.WithSession(ctx, uc.session)).Warn().Err(err).
			Int("seq", seq).
			Msg("failed to record focus transition")
	}
}

// Recorded returns the number of transitions seen so far.
func (uc *RecordTraceUseCase) Recorded() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.seq
}

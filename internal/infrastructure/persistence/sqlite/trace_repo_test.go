package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/domain/repository"
	"github.com/bnema/spatialnav/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/spatialnav/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTraceRepo(t *testing.T) repository.TraceRepository {
	t.Helper()
	db, err := sqlite.Open(testCtx(), filepath.Join(t.TempDir(), "trace.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewTraceRepository(db)
}

func TestTraceRepository_RecordAndRead(t *testing.T) {
	ctx := testCtx()
	repo := newTraceRepo(t)

	startedAt := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	require.NoError(t, repo.StartSession(ctx, "s1", "home", startedAt))
	require.NoError(t, repo.StartSession(ctx, "s1", "home", startedAt), "starting twice is a no-op")

	transitions := []entity.FocusTransition{
		{Session: "s1", Seq: 1, To: "menu-home", Cause: entity.FocusCauseFallback, Direction: entity.DirectionDown, At: startedAt.Add(time.Second)},
		{Session: "s1", Seq: 2, From: "menu-home", To: "card-1", Cause: entity.FocusCauseNavigate, Direction: entity.DirectionRight, At: startedAt.Add(2 * time.Second)},
		{Session: "s1", Seq: 3, From: "card-1", Cause: entity.FocusCauseUnregister, At: startedAt.Add(3 * time.Second)},
	}
	for _, tr := range transitions {
		require.NoError(t, repo.Record(ctx, tr))
	}

	got, err := repo.Transitions(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, len(transitions))
	for i := range transitions {
		assert.Equal(t, transitions[i].Seq, got[i].Seq)
		assert.Equal(t, transitions[i].From, got[i].From)
		assert.Equal(t, transitions[i].To, got[i].To)
		assert.Equal(t, transitions[i].Cause, got[i].Cause)
		assert.Equal(t, transitions[i].Direction, got[i].Direction)
		assert.True(t, transitions[i].At.Equal(got[i].At))
	}
}

func TestTraceRepository_RecordRequiresSession(t *testing.T) {
	repo := newTraceRepo(t)

	err := repo.Record(testCtx(), entity.FocusTransition{Session: "ghost", Seq: 1, To: "a", Cause: entity.FocusCauseExplicit, At: time.Now()})
	assert.Error(t, err)
}

func TestTraceRepository_DuplicateSeqRejected(t *testing.T) {
	ctx := testCtx()
	repo := newTraceRepo(t)
	require.NoError(t, repo.StartSession(ctx, "s1", "home", time.Now()))

	tr := entity.FocusTransition{Session: "s1", Seq: 1, To: "a", Cause: entity.FocusCauseExplicit, At: time.Now()}
	require.NoError(t, repo.Record(ctx, tr))
	assert.Error(t, repo.Record(ctx, tr))
}

func TestTraceRepository_ListSessions(t *testing.T) {
	ctx := testCtx()
	repo := newTraceRepo(t)

	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	require.NoError(t, repo.StartSession(ctx, "old", "home", base))
	require.NoError(t, repo.StartSession(ctx, "new", "modal", base.Add(time.Hour)))
	require.NoError(t, repo.Record(ctx, entity.FocusTransition{Session: "new", Seq: 1, To: "confirm", Cause: entity.FocusCauseAutoFocus, At: base.Add(time.Hour)}))

	sessions, err := repo.ListSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].Session)
	assert.Equal(t, "modal", sessions[0].Layout)
	assert.Equal(t, 1, sessions[0].Transitions)
	assert.True(t, sessions[0].StartedAt.Equal(base.Add(time.Hour)))
	assert.Equal(t, "old", sessions[1].Session)
	assert.Equal(t, 0, sessions[1].Transitions)

	limited, err := repo.ListSessions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestTraceRepository_DeleteSession(t *testing.T) {
	ctx := testCtx()
	repo := newTraceRepo(t)
	require.NoError(t, repo.StartSession(ctx, "s1", "home", time.Now()))
	require.NoError(t, repo.Record(ctx, entity.FocusTransition{Session: "s1", Seq: 1, To: "a", Cause: entity.FocusCauseExplicit, At: time.Now()}))

	require.NoError(t, repo.DeleteSession(ctx, "s1"))

	_, err := repo.Transitions(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrTraceNotFound)
	assert.ErrorIs(t, repo.DeleteSession(ctx, "s1"), repository.ErrTraceNotFound)
}

func TestMigrations_Version(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "trace.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

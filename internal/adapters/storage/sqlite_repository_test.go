package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/convobar/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "threads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository_AddAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.Add(ctx, domain.Thread{ID: "t1", Name: "Alice", IsBlockedByMigration: true})
	require.NoError(t, err)

	thread, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", thread.Name)
	assert.True(t, thread.IsBlockedByMigration)
	assert.False(t, thread.LastUpdated.IsZero())
}

func TestSQLiteRepository_AddDuplicate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "t1"}))
	err := repo.Add(ctx, domain.Thread{ID: "t1"})

	assert.ErrorIs(t, err, domain.ErrThreadExists)
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
}

func TestSQLiteRepository_ListOrdersByLastUpdated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "old", LastUpdated: now.Add(-time.Hour)}))
	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "new", LastUpdated: now}))

	threads, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	assert.Equal(t, "new", threads[0].ID)
	assert.Equal(t, "old", threads[1].ID)
}

func TestSQLiteRepository_ReadRequestSubtype(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "g", IsGroup: true, IsBlocked: true, HasPendingMessageRequest: true}))

	subtype, err := repo.ReadRequestSubtype(ctx, "g")
	require.NoError(t, err)
	assert.Equal(t, domain.SubtypeBlockedGroupInvite, subtype)

	_, err = repo.ReadRequestSubtype(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrThreadNotFound)
}

func TestSQLiteRepository_UpdateFlagsOnlyTouchesSetFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "t1", IsGroup: true, IsLocalUserPendingMember: true}))

	leftGroup := true
	require.NoError(t, repo.UpdateFlags(ctx, "t1", domain.ThreadFlags{HasLeftGroup: &leftGroup}))

	thread, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, thread.HasLeftGroup)
	assert.True(t, thread.IsLocalUserPendingMember)
}

func TestSQLiteRepository_UpdateFlagsFalseIsWritten(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "t1", IsBlockedByMigration: true}))

	off := false
	require.NoError(t, repo.UpdateFlags(ctx, "t1", domain.ThreadFlags{IsBlockedByMigration: &off}))

	thread, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, thread.IsBlockedByMigration)
}

func TestSQLiteRepository_AcceptRequest(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "t1", HasPendingMessageRequest: true, IsBlocked: true}))

	require.NoError(t, repo.AcceptRequest(ctx, "t1"))

	thread, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, thread.HasPendingMessageRequest)
	assert.False(t, thread.IsBlocked)
}

func TestSQLiteRepository_DeleteAndMissingUpdates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, domain.Thread{ID: "t1"}))

	require.NoError(t, repo.Delete(ctx, "t1"))
	assert.ErrorIs(t, repo.Delete(ctx, "t1"), domain.ErrThreadNotFound)
	assert.ErrorIs(t, repo.AcceptRequest(ctx, "t1"), domain.ErrThreadNotFound)
}

func TestRetryBusy(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	t.Run("retries busy until success", func(t *testing.T) {
		calls := 0
		err := retryBusy(context.Background(), func() error {
			calls++
			if calls < 2 {
				return busy
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("other errors return at once", func(t *testing.T) {
		calls := 0
		err := retryBusy(context.Background(), func() error {
			calls++
			return domain.ErrThreadNotFound
		})
		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		calls := 0
		err := retryBusy(context.Background(), func() error {
			calls++
			return busy
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "still busy")
		assert.Equal(t, busyRetries, calls)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := retryBusy(ctx, func() error { return busy })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

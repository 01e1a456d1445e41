package tasks

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	cutoff  time.Time
	deleted int64
	err     error
}

func (f *fakePruner) PruneInactiveUsers(before time.Time) (int64, error) {
	f.cutoff = before
	return f.deleted, f.err
}

type fakeReconciler struct {
	updated int64
	err     error
	calls   int
}

func (f *fakeReconciler) ReconcileAggregates() (int64, error) {
	f.calls++
	return f.updated, f.err
}

func TestPruneInactiveUsersProcessor(t *testing.T) {
	t.Run("computes the cutoff from the task payload", func(t *testing.T) {
		pruner := &fakePruner{deleted: 3}
		processor := PruneInactiveUsersProcessor(pruner)

		now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		err := processor(context.Background(), PruneInactiveUsersTask{RetentionDays: 30, Now: now})
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -30), pruner.cutoff)
	})

	t.Run("falls back to the default retention window", func(t *testing.T) {
		pruner := &fakePruner{}
		processor := PruneInactiveUsersProcessor(pruner)

		now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		err := processor(context.Background(), PruneInactiveUsersTask{Now: now})
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -730), pruner.cutoff)
	})

	t.Run("propagates pruner failures", func(t *testing.T) {
		pruner := &fakePruner{err: errors.New("locked")}
		processor := PruneInactiveUsersProcessor(pruner)

		err := processor(context.Background(), PruneInactiveUsersTask{RetentionDays: 30})
		require.Error(t, err)
	})

	t.Run("fails without a pruner", func(t *testing.T) {
		processor := PruneInactiveUsersProcessor(nil)
		err := processor(context.Background(), PruneInactiveUsersTask{})
		require.Error(t, err)
	})
}

func TestReconcileAggregatesProcessor(t *testing.T) {
	t.Run("runs the reconciler", func(t *testing.T) {
		reconciler := &fakeReconciler{updated: 12}
		processor := ReconcileAggregatesProcessor(reconciler)

		require.NoError(t, processor(context.Background(), ReconcileAggregatesTask{}))
		assert.Equal(t, 1, reconciler.calls)
	})

	t.Run("propagates reconciler failures", func(t *testing.T) {
		reconciler := &fakeReconciler{err: errors.New("locked")}
		processor := ReconcileAggregatesProcessor(reconciler)

		require.Error(t, processor(context.Background(), ReconcileAggregatesTask{}))
	})

	t.Run("fails without a reconciler", func(t *testing.T) {
		processor := ReconcileAggregatesProcessor(nil)
		require.Error(t, processor(context.Background(), ReconcileAggregatesTask{}))
	})
}

func TestQueueConfigs(t *testing.T) {
	prune := PruneInactiveUsersTask{}.Config()
	assert.Equal(t, "prune_inactive_users", prune.Name)
	assert.Equal(t, 3, prune.MaxAttempts)

	reconcile := ReconcileAggregatesTask{}.Config()
	assert.Equal(t, "reconcile_aggregates", reconcile.Name)
	assert.Equal(t, 3, reconcile.MaxAttempts)
}

func TestClientEnqueue(t *testing.T) {
	dbPath := "./test_tasks_" + t.Name() + ".db"
	client, err := NewClient(dbPath, DefaultConfig())
	require.NoError(t, err)
	defer func() {
		client.Close()
		os.Remove("./test_tasks_" + t.Name() + "-tasks.db")
	}()

	client.Register(
		NewPruneInactiveUsersQueue(&fakePruner{}),
		NewReconcileAggregatesQueue(&fakeReconciler{}),
	)

	ids, err := client.Add(ReconcileAggregatesTask{}).Ctx(context.Background()).Save()
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	ids, err = client.Add(PruneInactiveUsersTask{RetentionDays: 30}).Ctx(context.Background()).Save()
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, 1*time.Hour, cfg.CleanupInterval)
}

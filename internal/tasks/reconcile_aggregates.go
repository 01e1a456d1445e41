package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// AggregateReconciler recomputes the denormalized totals from purchase
// history.
type AggregateReconciler interface {
	ReconcileAggregates() (int64, error)
}

// ReconcileAggregatesTask repairs drift in users.total_spent,
// developers.total_revenue, and games.total_purchases. The purchase unit
// maintains these transactionally; this task is the safety net.
type ReconcileAggregatesTask struct{}

// Config returns the queue configuration for reconcile tasks.
func (t ReconcileAggregatesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "reconcile_aggregates",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ReconcileAggregatesProcessor creates a processor function for
// ReconcileAggregatesTask.
func ReconcileAggregatesProcessor(reconciler AggregateReconciler) backlite.QueueProcessor[ReconcileAggregatesTask] {
	return func(ctx context.Context, task ReconcileAggregatesTask) error {
		if reconciler == nil {
			return fmt.Errorf("aggregate reconciler not configured")
		}

		updated, err := reconciler.ReconcileAggregates()
		if err != nil {
			return fmt.Errorf("reconcile aggregates: %w", err)
		}

		log.Printf("[TASK] Reconciled aggregates across %d rows", updated)
		return nil
	}
}

// NewReconcileAggregatesQueue creates a backlite queue for reconcile tasks.
func NewReconcileAggregatesQueue(reconciler AggregateReconciler) backlite.Queue {
	return backlite.NewQueue(ReconcileAggregatesProcessor(reconciler))
}

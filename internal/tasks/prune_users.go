package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// InactiveUserPruner deletes users whose last activity predates a cutoff.
type InactiveUserPruner interface {
	PruneInactiveUsers(before time.Time) (int64, error)
}

// PruneInactiveUsersTask removes users that have been inactive longer than
// the retention window. Users with purchase history are never removed.
type PruneInactiveUsersTask struct {
	RetentionDays int       `json:"retention_days"`
	Now           time.Time `json:"now"`
}

// Config returns the queue configuration for prune tasks.
func (t PruneInactiveUsersTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prune_inactive_users",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PruneInactiveUsersProcessor creates a processor function for
// PruneInactiveUsersTask.
func PruneInactiveUsersProcessor(pruner InactiveUserPruner) backlite.QueueProcessor[PruneInactiveUsersTask] {
	return func(ctx context.Context, task PruneInactiveUsersTask) error {
		if pruner == nil {
			return fmt.Errorf("inactive user pruner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 730
		}
		now := task.Now
		if now.IsZero() {
			now = time.Now()
		}
		cutoff := now.AddDate(0, 0, -retentionDays)

		deleted, err := pruner.PruneInactiveUsers(cutoff)
		if err != nil {
			return fmt.Errorf("prune inactive users: %w", err)
		}

		log.Printf("[TASK] Pruned %d users inactive since %s", deleted, cutoff.Format("2006-01-02"))
		return nil
	}
}

// NewPruneInactiveUsersQueue creates a backlite queue for prune tasks.
func NewPruneInactiveUsersQueue(pruner InactiveUserPruner) backlite.Queue {
	return backlite.NewQueue(PruneInactiveUsersProcessor(pruner))
}

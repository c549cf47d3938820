package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/stagejob"
)

// PurgeFinishedJobs deletes completed and failed job rows older than the
// retention window. Finished rows are kept for a while as an operator
// audit trail; they carry no pipeline state.
func PurgeFinishedJobs(ctx context.Context, client *ent.Client, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := client.StageJob.Delete().
		Where(
			stagejob.StatusIn(stagejob.StatusCompleted, stagejob.StatusFailed),
			stagejob.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purging finished jobs: %w", err)
	}
	return n, nil
}

package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/stagejob"
)

// RecoverStartupJobs resets jobs this pod left in_progress when it last
// crashed, making them immediately claimable again. Executors are
// idempotent — the coordinator and event dedupe absorb any work the
// crashed run already reported — so redelivery is safe.
//
// Called once during startup, before the worker pool begins polling.
func RecoverStartupJobs(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.StageJob.Update().
		Where(
			stagejob.StatusEQ(stagejob.StatusInProgress),
			stagejob.ClaimedByEQ(podID),
		).
		SetStatus(stagejob.StatusPending).
		ClearClaimedBy().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("recovering startup jobs: %w", err)
	}

	if n > 0 {
		slog.Warn("Recovered in-progress jobs from previous run",
			"pod_id", podID, "count", n)
	}
	return nil
}

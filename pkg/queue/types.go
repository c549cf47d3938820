// Package queue provides the stage job queue: durable PostgreSQL-backed
// queues, one per pipeline stage, with batch claiming, per-job
// acknowledgement, and transient-failure retry with exponential backoff.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/pkg/models"
)

// ErrNoJobsAvailable indicates the stage queue has no claimable jobs.
var ErrNoJobsAvailable = errors.New("no jobs available")

// StageExecutor processes one claimed job and decides its acknowledgement.
//
// Executors own the stage semantics end to end: blob reads, container
// calls, blob writes, event emission, and the coordinator report. The
// worker only claims, dispatches, and applies the Outcome.
type StageExecutor interface {
	Stage() models.Stage
	Execute(ctx context.Context, job *ent.StageJob) Outcome
}

// Outcome is a job's acknowledgement decision. Retry requeues with
// backoff until attempts are exhausted; otherwise the job completes
// (Err, when set, is recorded as a definitive failure that the executor
// already absorbed at the pipeline level).
type Outcome struct {
	Retry bool
	Err   error
}

// Ack marks the job successfully processed.
func Ack() Outcome { return Outcome{} }

// AckFailure acknowledges a job whose failure is definitive. The executor
// has already reported the slot to the coordinator so the pipeline
// advances; the error is kept on the job record for operators.
func AckFailure(err error) Outcome { return Outcome{Err: err} }

// Retry requeues the job after backoff.
func Retry(err error) Outcome { return Outcome{Retry: true, Err: err} }

// PoolHealth is the aggregate health snapshot of all stage workers on a pod.
type PoolHealth struct {
	IsHealthy     bool           `json:"isHealthy"`
	DBReachable   bool           `json:"dbReachable"`
	DBError       string         `json:"dbError,omitempty"`
	PodID         string         `json:"podId"`
	ActiveWorkers int            `json:"activeWorkers"`
	TotalWorkers  int            `json:"totalWorkers"`
	QueueDepth    int            `json:"queueDepth"`
	WorkerStats   []WorkerHealth `json:"workerStats"`
}

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Stage         string    `json:"stage"`
	Status        string    `json:"status"` // "idle" or "working"
	JobsProcessed int       `json:"jobsProcessed"`
	LastActivity  time.Time `json:"lastActivity"`
}

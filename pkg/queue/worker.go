package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/stagejob"
	"github.com/plandeck/plandeck/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker polls one stage's queue, claims job batches with FOR UPDATE SKIP
// LOCKED, and runs each claimed job on its own goroutine so jobs in a
// batch never block each other.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor StageExecutor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.RWMutex
	status        WorkerStatus
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a queue worker for the executor's stage.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor StageExecutor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for in-flight jobs to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Stage:         w.executor.Stage().String(),
		Status:        string(w.status),
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "stage", w.executor.Stage())
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing batch", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims up to BatchSize jobs and processes them
// concurrently, waiting for the batch before the next poll.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	jobs, err := w.claimBatch(ctx)
	if err != nil {
		return err
	}

	w.setStatus(WorkerStatusWorking)
	defer w.setStatus(WorkerStatusIdle)

	var batch sync.WaitGroup
	for _, job := range jobs {
		batch.Add(1)
		go func(job *ent.StageJob) {
			defer batch.Done()
			w.processJob(ctx, job)
		}(job)
	}
	batch.Wait()

	w.mu.Lock()
	w.jobsProcessed += len(jobs)
	w.mu.Unlock()
	return nil
}

// claimBatch atomically claims pending jobs using FOR UPDATE SKIP LOCKED,
// ordered by creation for FIFO processing within a stage.
func (w *Worker) claimBatch(ctx context.Context) ([]*ent.StageJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	jobs, err := tx.StageJob.Query().
		Where(
			stagejob.StageEQ(stagejob.Stage(w.executor.Stage())),
			stagejob.StatusEQ(stagejob.StatusPending),
			stagejob.AvailableAtLTE(time.Now()),
		).
		Order(ent.Asc(stagejob.FieldCreatedAt)).
		Limit(w.config.BatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying pending jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsAvailable
	}

	now := time.Now()
	claimed := make([]*ent.StageJob, 0, len(jobs))
	for _, job := range jobs {
		updated, err := job.Update().
			SetStatus(stagejob.StatusInProgress).
			SetClaimedBy(w.podID).
			SetClaimedAt(now).
			AddAttempts(1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("claiming job %s: %w", job.ID, err)
		}
		claimed = append(claimed, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return claimed, nil
}

// processJob runs the executor and applies its Outcome. Acknowledgement
// writes use a background context — the worker context may already be
// cancelled during shutdown, and losing the ack would redeliver a job the
// executor finished.
func (w *Worker) processJob(ctx context.Context, job *ent.StageJob) {
	log := slog.With("job_id", job.ID, "stage", job.Stage, "plan_id", job.PlanID, "sheet_id", job.SheetID)

	outcome := w.executor.Execute(ctx, job)

	ackCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch {
	case !outcome.Retry:
		if err := w.complete(ackCtx, job, outcome.Err); err != nil {
			log.Error("Failed to ack job", "error", err)
			return
		}
		if outcome.Err != nil {
			log.Warn("Job acked with absorbed failure", "error", outcome.Err)
		} else {
			log.Debug("Job completed")
		}

	case job.Attempts >= w.config.MaxAttempts:
		// Exhausted. The job is parked as failed; the plan's deadline
		// alarm decides plan-level failure.
		if err := w.fail(ackCtx, job, outcome.Err); err != nil {
			log.Error("Failed to mark job failed", "error", err)
			return
		}
		log.Error("Job retries exhausted", "attempts", job.Attempts, "error", outcome.Err)

	default:
		delay := retryBackoff(w.config, job.Attempts)
		if err := w.requeue(ackCtx, job, delay, outcome.Err); err != nil {
			log.Error("Failed to requeue job", "error", err)
			return
		}
		log.Warn("Job requeued after transient failure",
			"attempts", job.Attempts, "retry_in", delay, "error", outcome.Err)
	}
}

func (w *Worker) complete(ctx context.Context, job *ent.StageJob, jobErr error) error {
	update := job.Update().
		SetStatus(stagejob.StatusCompleted).
		SetCompletedAt(time.Now())
	if jobErr != nil {
		update.SetLastError(jobErr.Error())
	}
	return update.Exec(ctx)
}

func (w *Worker) fail(ctx context.Context, job *ent.StageJob, jobErr error) error {
	update := job.Update().
		SetStatus(stagejob.StatusFailed).
		SetCompletedAt(time.Now())
	if jobErr != nil {
		update.SetLastError(jobErr.Error())
	}
	return update.Exec(ctx)
}

func (w *Worker) requeue(ctx context.Context, job *ent.StageJob, delay time.Duration, jobErr error) error {
	update := job.Update().
		SetStatus(stagejob.StatusPending).
		SetAvailableAt(time.Now().Add(delay)).
		ClearClaimedBy().
		ClearClaimedAt()
	if jobErr != nil {
		update.SetLastError(jobErr.Error())
	}
	return update.Exec(ctx)
}

// retryBackoff doubles the base delay per prior attempt, capped at the
// configured maximum.
func retryBackoff(cfg *config.QueueConfig, attempts int) time.Duration {
	delay := cfg.RetryBackoffBase
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= cfg.RetryBackoffMax {
			return cfg.RetryBackoffMax
		}
	}
	if delay > cfg.RetryBackoffMax {
		return cfg.RetryBackoffMax
	}
	return delay
}

// pollInterval returns the poll duration with jitter so workers across
// pods don't poll in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status WorkerStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.lastActivity = time.Now()
}

package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/stagejob"
	"github.com/plandeck/plandeck/pkg/config"
)

// WorkerPool runs WorkersPerStage workers for every registered stage
// executor on this pod.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executors []StageExecutor
	workers   []*Worker
	started   bool
}

// NewWorkerPool creates a pool over the given stage executors.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executors ...StageExecutor) *WorkerPool {
	return &WorkerPool{
		podID:     podID,
		client:    client,
		config:    cfg,
		executors: executors,
	}
}

// Start spawns the worker goroutines. Safe to call multiple times;
// subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"stages", len(p.executors),
		"workers_per_stage", p.config.WorkersPerStage)

	for _, executor := range p.executors {
		for i := 0; i < p.config.WorkersPerStage; i++ {
			workerID := fmt.Sprintf("%s-%s-%d", p.podID, executor.Stage(), i)
			worker := NewWorker(workerID, p.podID, p.client, p.config, executor)
			p.workers = append(p.workers, worker)
			worker.Start(ctx)
		}
	}

	slog.Info("Worker pool started", "worker_count", len(p.workers))
	return nil
}

// Stop signals all workers and waits for in-flight jobs to finish.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	var wg sync.WaitGroup
	for _, worker := range p.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.Stop()
		}(worker)
	}
	wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the pool's health snapshot, including the total pending
// depth across all stage queues.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.StageJob.Query().
		Where(stagejob.StatusEQ(stagejob.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
	}
}

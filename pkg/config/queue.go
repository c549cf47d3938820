package config

import "time"

// QueueConfig controls how stage jobs are polled, claimed, and retried.
type QueueConfig struct {
	// WorkersPerStage is the number of worker goroutines per stage queue
	// per replica/pod.
	WorkersPerStage int

	// BatchSize is the maximum number of jobs a worker claims per poll.
	// Each job in a batch is processed and acknowledged independently.
	BatchSize int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// MaxAttempts caps transient retries per job. Exhaustion marks the
	// job failed; the plan-level deadline alarm then decides plan failure.
	MaxAttempts int

	// RetryBackoffBase is the first retry delay; each subsequent retry
	// doubles it up to RetryBackoffMax.
	RetryBackoffBase time.Duration
	RetryBackoffMax  time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkersPerStage:         2,
		BatchSize:               4,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxAttempts:             5,
		RetryBackoffBase:        2 * time.Second,
		RetryBackoffMax:         60 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

// LoadQueueConfig reads queue settings from the environment.
func LoadQueueConfig() (*QueueConfig, error) {
	cfg := DefaultQueueConfig()
	var err error
	if cfg.WorkersPerStage, err = getEnvInt("QUEUE_WORKERS_PER_STAGE", cfg.WorkersPerStage); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = getEnvInt("QUEUE_BATCH_SIZE", cfg.BatchSize); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return nil, err
	}
	if cfg.PollIntervalJitter, err = getEnvDuration("QUEUE_POLL_JITTER", cfg.PollIntervalJitter); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts, err = getEnvInt("QUEUE_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.RetryBackoffBase, err = getEnvDuration("QUEUE_RETRY_BACKOFF_BASE", cfg.RetryBackoffBase); err != nil {
		return nil, err
	}
	if cfg.RetryBackoffMax, err = getEnvDuration("QUEUE_RETRY_BACKOFF_MAX", cfg.RetryBackoffMax); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return nil, err
	}
	return cfg, nil
}

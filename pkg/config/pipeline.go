package config

import "time"

// PipelineConfig controls plan-level processing behavior.
type PipelineConfig struct {
	// PlanTimeout is the default wall-clock deadline for a whole plan.
	// Expiry forces the plan to failed with "Processing timeout exceeded".
	PlanTimeout time.Duration

	// RenderBatchSize is how many PDF pages the image-generation worker
	// requests per /render-pages call.
	RenderBatchSize int

	// DeadlineSweepInterval is how often expired plan deadlines are
	// re-checked against the database (covers process restarts, where the
	// in-process alarm timer is lost).
	DeadlineSweepInterval time.Duration
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		PlanTimeout:           30 * time.Minute,
		RenderBatchSize:       4,
		DeadlineSweepInterval: time.Minute,
	}
}

// LoadPipelineConfig reads pipeline settings from the environment.
func LoadPipelineConfig() (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()
	var err error
	if cfg.PlanTimeout, err = getEnvDuration("PIPELINE_PLAN_TIMEOUT", cfg.PlanTimeout); err != nil {
		return nil, err
	}
	if cfg.RenderBatchSize, err = getEnvInt("PIPELINE_RENDER_BATCH_SIZE", cfg.RenderBatchSize); err != nil {
		return nil, err
	}
	if cfg.DeadlineSweepInterval, err = getEnvDuration("PIPELINE_DEADLINE_SWEEP_INTERVAL", cfg.DeadlineSweepInterval); err != nil {
		return nil, err
	}
	return cfg, nil
}

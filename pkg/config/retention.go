package config

import "time"

// RetentionConfig controls background cleanup of terminal plans' event rows.
type RetentionConfig struct {
	// EventTTL is how long event rows of complete/failed plans are kept
	// for viewer catchup before being purged.
	EventTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        7 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

// LoadRetentionConfig reads retention settings from the environment.
func LoadRetentionConfig() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()
	var err error
	if cfg.EventTTL, err = getEnvDuration("RETENTION_EVENT_TTL", cfg.EventTTL); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getEnvDuration("RETENTION_CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return nil, err
	}
	return cfg, nil
}

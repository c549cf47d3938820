// Package config loads service configuration from the environment with
// typed defaults per concern.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load and passed
// to the components that need it.
type Config struct {
	Queue     *QueueConfig
	Container *ContainerConfig
	Storage   *StorageConfig
	Pipeline  *PipelineConfig
	Retention *RetentionConfig
}

// Load builds the full configuration from environment variables, applying
// defaults for anything unset. It never reads files — callers load .env
// into the environment first (see cmd/plandeck).
func Load() (*Config, error) {
	queue, err := LoadQueueConfig()
	if err != nil {
		return nil, fmt.Errorf("queue config: %w", err)
	}
	container, err := LoadContainerConfig()
	if err != nil {
		return nil, fmt.Errorf("container config: %w", err)
	}
	pipeline, err := LoadPipelineConfig()
	if err != nil {
		return nil, fmt.Errorf("pipeline config: %w", err)
	}
	retention, err := LoadRetentionConfig()
	if err != nil {
		return nil, fmt.Errorf("retention config: %w", err)
	}
	return &Config{
		Queue:     queue,
		Container: container,
		Storage:   LoadStorageConfig(),
		Pipeline:  pipeline,
		Retention: retention,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

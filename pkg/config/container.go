package config

import "time"

// ContainerConfig locates the stateless compute container and bounds each
// call category with its own deadline.
type ContainerConfig struct {
	// BaseURL of the compute container, e.g. http://localhost:9090.
	BaseURL string

	// Per-call deadlines. Expiry counts as a transient failure for stages
	// whose policy retries.
	GenerateTimeout time.Duration // /generate-images and /render-pages
	MetadataTimeout time.Duration // /extract-metadata
	DetectTimeout   time.Duration // /detect-callouts and /detect-layout
	TilesTimeout    time.Duration // /generate-tiles
}

// DefaultContainerConfig returns the built-in container call deadlines.
func DefaultContainerConfig() *ContainerConfig {
	return &ContainerConfig{
		BaseURL:         "http://localhost:9090",
		GenerateTimeout: 120 * time.Second,
		MetadataTimeout: 30 * time.Second,
		DetectTimeout:   60 * time.Second,
		TilesTimeout:    120 * time.Second,
	}
}

// LoadContainerConfig reads container settings from the environment.
func LoadContainerConfig() (*ContainerConfig, error) {
	cfg := DefaultContainerConfig()
	cfg.BaseURL = getEnvOrDefault("CONTAINER_BASE_URL", cfg.BaseURL)
	var err error
	if cfg.GenerateTimeout, err = getEnvDuration("CONTAINER_GENERATE_TIMEOUT", cfg.GenerateTimeout); err != nil {
		return nil, err
	}
	if cfg.MetadataTimeout, err = getEnvDuration("CONTAINER_METADATA_TIMEOUT", cfg.MetadataTimeout); err != nil {
		return nil, err
	}
	if cfg.DetectTimeout, err = getEnvDuration("CONTAINER_DETECT_TIMEOUT", cfg.DetectTimeout); err != nil {
		return nil, err
	}
	if cfg.TilesTimeout, err = getEnvDuration("CONTAINER_TILES_TIMEOUT", cfg.TilesTimeout); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config holds runtime configuration for the orchestrator daemon.
// Values are loaded from the environment with built-in defaults; the .env
// file is loaded by main before Initialize runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration object assembled at startup.
type Config struct {
	Orchestrator *OrchestratorConfig
	Watcher      *WatcherConfig
	Slurm        *SlurmConfig
	Retention    *RetentionConfig
}

// Initialize loads configuration from the environment and validates it.
func Initialize() (*Config, error) {
	cfg := &Config{
		Orchestrator: DefaultOrchestratorConfig(),
		Watcher:      DefaultWatcherConfig(),
		Slurm:        DefaultSlurmConfig(),
		Retention:    DefaultRetentionConfig(),
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks all sub-configs.
func (c *Config) Validate() error {
	if err := c.Orchestrator.Validate(); err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}
	if err := c.Watcher.Validate(); err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	if err := c.Slurm.Validate(); err != nil {
		return fmt.Errorf("slurm: %w", err)
	}
	if err := c.Retention.Validate(); err != nil {
		return fmt.Errorf("retention: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := envDuration("SLURM_POLL_INTERVAL"); v > 0 {
		cfg.Slurm.PollInterval = v
	}
	if v := os.Getenv("SLURM_DEFAULT_PARTITION"); v != "" {
		cfg.Slurm.DefaultPartition = v
	}
	if v := envDuration("WATCHER_DEBOUNCE"); v > 0 {
		cfg.Watcher.WatchDebounce = v
	}
	if v := envDuration("WATCHER_RESCAN_INTERVAL"); v > 0 {
		cfg.Watcher.RescanInterval = v
	}
	if v := envInt("RETENTION_SESSION_DAYS"); v > 0 {
		cfg.Retention.SessionRetentionDays = v
	}
	if v := envDuration("RETENTION_EVENT_TTL"); v > 0 {
		cfg.Retention.EventTTL = v
	}
	if v := envDuration("ORCHESTRATOR_SHUTDOWN_TIMEOUT"); v > 0 {
		cfg.Orchestrator.GracefulShutdownTimeout = v
	}
}

func envDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

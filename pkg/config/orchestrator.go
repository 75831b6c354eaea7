package config

import (
	"fmt"
	"time"
)

// OrchestratorConfig controls the pipeline orchestrator.
type OrchestratorConfig struct {
	// CommandPreviewLength bounds the command excerpt recorded in
	// stage_submitted activity entries.
	CommandPreviewLength int

	// StderrTailBytes is the tail budget for reading a failed job's stderr.
	StderrTailBytes int64

	// StdoutTailBytes is the tail budget for scanning a failed job's stdout
	// for error lines.
	StdoutTailBytes int64

	// StderrPreviewLines is how many final stderr lines are kept in the
	// error activity context.
	StderrPreviewLines int

	// StdoutErrorLines is how many matching stdout error lines are kept.
	StdoutErrorLines int

	// GracefulShutdownTimeout bounds how long shutdown waits for in-flight
	// event handling to finish.
	GracefulShutdownTimeout time.Duration
}

// DefaultOrchestratorConfig returns the built-in orchestrator defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		CommandPreviewLength:    120,
		StderrTailBytes:         8 * 1024,
		StdoutTailBytes:         32 * 1024,
		StderrPreviewLines:      20,
		StdoutErrorLines:        10,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// Validate checks the orchestrator configuration.
func (c *OrchestratorConfig) Validate() error {
	if c.StderrTailBytes <= 0 || c.StdoutTailBytes <= 0 {
		return fmt.Errorf("tail budgets must be positive")
	}
	if c.CommandPreviewLength <= 0 {
		return fmt.Errorf("command preview length must be positive")
	}
	return nil
}

// WatcherConfig controls the directory watcher.
type WatcherConfig struct {
	// WatchDebounce is the quiet period before emitting files-added in
	// watch mode; ExistingDebounce applies in existing mode.
	WatchDebounce    time.Duration
	ExistingDebounce time.Duration

	// A file is considered stable when its size has not changed for
	// *StableFor, polled every *StablePoll. Watch mode is conservative
	// (partial writes from the microscope take seconds); existing mode
	// assumes data at rest.
	WatchStableFor     time.Duration
	WatchStablePoll    time.Duration
	ExistingStableFor  time.Duration
	ExistingStablePoll time.Duration

	// RescanInterval is the periodic full-scan fallback for filesystems
	// where change notifications are unreliable (NFS mounts).
	RescanInterval time.Duration
}

// DefaultWatcherConfig returns the built-in watcher defaults.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		WatchDebounce:      5 * time.Second,
		ExistingDebounce:   2 * time.Second,
		WatchStableFor:     2 * time.Second,
		WatchStablePoll:    500 * time.Millisecond,
		ExistingStableFor:  500 * time.Millisecond,
		ExistingStablePoll: 200 * time.Millisecond,
		RescanInterval:     10 * time.Second,
	}
}

// Validate checks the watcher configuration.
func (c *WatcherConfig) Validate() error {
	if c.WatchDebounce <= 0 || c.ExistingDebounce <= 0 {
		return fmt.Errorf("debounce intervals must be positive")
	}
	if c.WatchStablePoll <= 0 || c.ExistingStablePoll <= 0 {
		return fmt.Errorf("stability poll intervals must be positive")
	}
	return nil
}

// SlurmConfig controls the Slurm cluster driver.
type SlurmConfig struct {
	// Binaries; overridable for clusters with wrapped submit commands.
	SbatchBin  string
	ScancelBin string
	SacctBin   string

	// DefaultPartition is used when a session does not pin one.
	DefaultPartition string

	// PollInterval is how often tracked jobs are polled for state changes.
	PollInterval time.Duration

	// SubmitTimeout bounds a single sbatch invocation.
	SubmitTimeout time.Duration
}

// DefaultSlurmConfig returns the built-in Slurm defaults.
func DefaultSlurmConfig() *SlurmConfig {
	return &SlurmConfig{
		SbatchBin:        "sbatch",
		ScancelBin:       "scancel",
		SacctBin:         "sacct",
		DefaultPartition: "gpu",
		PollInterval:     10 * time.Second,
		SubmitTimeout:    30 * time.Second,
	}
}

// Validate checks the Slurm configuration.
func (c *SlurmConfig) Validate() error {
	if c.SbatchBin == "" || c.ScancelBin == "" || c.SacctBin == "" {
		return fmt.Errorf("slurm binaries must be set")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	return nil
}

// RetentionConfig controls the cleanup service.
type RetentionConfig struct {
	// SessionRetentionDays is how long terminal sessions are kept before
	// soft deletion.
	SessionRetentionDays int

	// EventTTL is how long persisted broadcast events are kept for
	// websocket catchup.
	EventTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 90,
		EventTTL:             24 * time.Hour,
		CleanupInterval:      1 * time.Hour,
	}
}

// Validate checks the retention configuration.
func (c *RetentionConfig) Validate() error {
	if c.SessionRetentionDays <= 0 {
		return fmt.Errorf("session retention must be positive")
	}
	if c.EventTTL <= 0 || c.CleanupInterval <= 0 {
		return fmt.Errorf("event TTL and cleanup interval must be positive")
	}
	return nil
}

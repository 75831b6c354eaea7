package models

// PipelineStats carries the simple counters a stage tool reports in its
// output. Zero values mean "not reported".
type PipelineStats struct {
	PixelSize       float64 `json:"pixel_size,omitempty"`
	MicrographCount int     `json:"micrograph_count,omitempty"`
	ParticleCount   int     `json:"particle_count,omitempty"`
	BoxSize         int     `json:"box_size,omitempty"`
	Resolution      float64 `json:"resolution,omitempty"`
	ClassCount      int     `json:"class_count,omitempty"`
	IterationCount  int     `json:"iteration_count,omitempty"`
}

// ClusterParams are the resource knobs handed to the cluster driver for one
// submission.
type ClusterParams struct {
	Partition string `json:"partition"`
	MPIProcs  int    `json:"mpi_procs"`
	Threads   int    `json:"threads"`
	GPUCount  int    `json:"gpu_count"`
}

// ActivityLevel classifies an activity-log entry.
type ActivityLevel string

// Activity levels.
const (
	LevelInfo    ActivityLevel = "info"
	LevelSuccess ActivityLevel = "success"
	LevelWarning ActivityLevel = "warning"
	LevelError   ActivityLevel = "error"
)

// Activity is one append-only activity-log entry for a session. Context is
// an open-ended payload carried through to persistence as JSON.
type Activity struct {
	Event      string         `json:"event"`
	Message    string         `json:"message"`
	Level      ActivityLevel  `json:"level"`
	Stage      StageKey       `json:"stage,omitempty"`
	JobName    string         `json:"job_name,omitempty"`
	PassNumber int            `json:"pass_number,omitempty"`
	Context    map[string]any `json:"context,omitempty"`
}

// ActivityFilter selects activity entries for the query surface.
type ActivityFilter struct {
	Level  ActivityLevel
	Stage  StageKey
	Search string // substring match against event and message
	Limit  int
	Offset int
}

package models

// StageKey identifies a step of the preprocessing pipeline.
type StageKey string

// Pipeline stage keys. Class2D is a side branch and never part of the
// linear pass.
const (
	StageImport  StageKey = "import"
	StageMotion  StageKey = "motion"
	StageCtf     StageKey = "ctf"
	StagePick    StageKey = "pick"
	StageExtract StageKey = "extract"
	StageClass2D StageKey = "class2d"
)

// PipelineOrder is the strict submission order of the linear pipeline.
var PipelineOrder = []StageKey{StageImport, StageMotion, StageCtf, StagePick, StageExtract}

// NextStage returns the stage following k in the linear pipeline, or ""
// when k is the terminal stage (or not part of the linear pipeline at all).
func NextStage(k StageKey) StageKey {
	for i, s := range PipelineOrder {
		if s == k && i+1 < len(PipelineOrder) {
			return PipelineOrder[i+1]
		}
	}
	return ""
}

// IsPipelineStage reports whether k belongs to the linear pipeline.
func IsPipelineStage(k StageKey) bool {
	for _, s := range PipelineOrder {
		if s == k {
			return true
		}
	}
	return false
}

// DirKind returns the job directory prefix for a stage, following the
// layout the downstream tool expects inside the project directory.
func (k StageKey) DirKind() string {
	switch k {
	case StageImport:
		return "Import"
	case StageMotion:
		return "MotionCorr"
	case StageCtf:
		return "CtfFind"
	case StagePick:
		return "AutoPick"
	case StageExtract:
		return "Extract"
	case StageClass2D:
		return "Class2D"
	}
	return ""
}

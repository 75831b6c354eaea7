package stage

import (
	"github.com/cryoflow/cryoflow/pkg/models"
)

// autoMPIDefaults are the per-stage MPI process counts applied when the
// operator leaves mpi_procs at 1. Import is single-process by nature.
var autoMPIDefaults = map[models.StageKey]int{
	models.StageImport:  1,
	models.StageMotion:  4,
	models.StageCtf:     4,
	models.StagePick:    4,
	models.StageExtract: 4,
	models.StageClass2D: 1,
}

// DeriveClusterParams computes the resource knobs for one submission.
// Operator values above 1 override the per-stage MPI defaults; builders
// that do not support MPI are forced to a single process.
func DeriveClusterParams(b Builder, slurm models.SlurmConfig, defaultPartition string) models.ClusterParams {
	partition := slurm.Partition
	if partition == "" {
		partition = defaultPartition
	}

	mpi := slurm.MPIProcs
	if mpi <= 1 {
		mpi = autoMPIDefaults[b.Stage()]
	}
	if !b.SupportsMPI() {
		mpi = 1
	}

	threads := slurm.Threads
	if threads <= 0 {
		threads = 1
	}

	gpus := 0
	if b.SupportsGPU() {
		gpus = slurm.GPUCount
		if gpus <= 0 {
			gpus = 1
		}
	}

	return models.ClusterParams{
		Partition: partition,
		MPIProcs:  mpi,
		Threads:   threads,
		GPUCount:  gpus,
	}
}

// EffectivePixelSize tracks the pixel size of a stage's output as binning
// and rescaling compound down the pipeline.
func EffectivePixelSize(k models.StageKey, optics models.OpticsConfig, motion models.MotionConfig, extraction models.ExtractionConfig) float64 {
	raw := optics.PixelSize
	switch k {
	case models.StageImport:
		return raw
	case models.StageMotion, models.StageCtf, models.StagePick:
		return raw * motion.BinFactor
	case models.StageExtract, models.StageClass2D:
		corrected := raw * motion.BinFactor
		if extraction.Rescale && extraction.RescaledSize > 0 {
			return corrected * float64(extraction.BoxSize) / float64(extraction.RescaledSize)
		}
		return corrected
	}
	return raw
}

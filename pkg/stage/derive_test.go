package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/pkg/models"
)

func TestDeriveClusterParamsAutoMPI(t *testing.T) {
	cfg := validConfig()
	slurm := models.SlurmConfig{Partition: "cryo", MPIProcs: 1, Threads: 8, GPUCount: 2}

	cases := map[models.StageKey]int{
		models.StageImport:  1,
		models.StageMotion:  4,
		models.StageCtf:     4,
		models.StagePick:    4,
		models.StageExtract: 4,
		models.StageClass2D: 1, // fast variant forces single process
	}
	for k, wantMPI := range cases {
		b, err := New(k, cfg)
		require.NoError(t, err)
		p := DeriveClusterParams(b, slurm, "gpu")
		assert.Equal(t, wantMPI, p.MPIProcs, k)
		assert.Equal(t, "cryo", p.Partition, k)
		assert.Equal(t, 8, p.Threads, k)
	}
}

func TestDeriveClusterParamsOperatorOverride(t *testing.T) {
	cfg := validConfig()
	slurm := models.SlurmConfig{MPIProcs: 9}

	b, err := New(models.StageCtf, cfg)
	require.NoError(t, err)
	p := DeriveClusterParams(b, slurm, "gpu")
	assert.Equal(t, 9, p.MPIProcs)
	assert.Equal(t, "gpu", p.Partition, "default partition applies when unset")
	assert.Equal(t, 1, p.Threads)

	// Override is ignored for builders that cannot use MPI.
	b, err = New(models.StageImport, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, DeriveClusterParams(b, slurm, "gpu").MPIProcs)
}

func TestDeriveClusterParamsGPUAllocation(t *testing.T) {
	cfg := validConfig()

	b, err := New(models.StageMotion, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, DeriveClusterParams(b, models.SlurmConfig{GPUCount: 2}, "gpu").GPUCount)
	assert.Equal(t, 1, DeriveClusterParams(b, models.SlurmConfig{}, "gpu").GPUCount,
		"GPU-capable stage defaults to one GPU")

	b, err = New(models.StageCtf, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, DeriveClusterParams(b, models.SlurmConfig{GPUCount: 2}, "gpu").GPUCount,
		"CPU-only stage never allocates GPUs")
}

func TestEffectivePixelSize(t *testing.T) {
	optics := models.OpticsConfig{PixelSize: 1.0}
	motion := models.MotionConfig{BinFactor: 2}
	extraction := models.ExtractionConfig{Rescale: true, BoxSize: 256, RescaledSize: 64}

	assert.InDelta(t, 1.0, EffectivePixelSize(models.StageImport, optics, motion, extraction), 1e-9)
	assert.InDelta(t, 2.0, EffectivePixelSize(models.StageMotion, optics, motion, extraction), 1e-9)
	assert.InDelta(t, 2.0, EffectivePixelSize(models.StageCtf, optics, motion, extraction), 1e-9)
	assert.InDelta(t, 2.0, EffectivePixelSize(models.StagePick, optics, motion, extraction), 1e-9)
	assert.InDelta(t, 8.0, EffectivePixelSize(models.StageExtract, optics, motion, extraction), 1e-9)
	assert.InDelta(t, 8.0, EffectivePixelSize(models.StageClass2D, optics, motion, extraction), 1e-9)

	extraction.Rescale = false
	assert.InDelta(t, 2.0, EffectivePixelSize(models.StageExtract, optics, motion, extraction), 1e-9)
}

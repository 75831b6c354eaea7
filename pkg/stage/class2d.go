package stage

import (
	"fmt"
	"path"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// Iteration defaults per variant. The gradient-driven fast variant needs
// many cheap iterations; the EM variant converges in few expensive ones.
const (
	fastIterationDefault = 200
	slowIterationDefault = 25
)

// class2DBuilder runs a 2D classification batch over the particles
// extracted so far. Each batch is a distinct job; batches are never re-run.
type class2DBuilder struct {
	cfg BuildConfig
}

func (b *class2DBuilder) Stage() models.StageKey { return models.StageClass2D }

func (b *class2DBuilder) Validate() error {
	c := b.cfg.Class2D
	if c.ClassCount <= 0 {
		return fmt.Errorf("class2d: class count must be positive, got %d", c.ClassCount)
	}
	if c.MaskDiameter <= 0 {
		return fmt.Errorf("class2d: mask diameter must be positive, got %g", c.MaskDiameter)
	}
	if c.IterationCount < 0 {
		return fmt.Errorf("class2d: iteration count must not be negative, got %d", c.IterationCount)
	}
	if _, err := requireUpstream(b.cfg, models.StageExtract); err != nil {
		return fmt.Errorf("class2d: %w", err)
	}
	return nil
}

func (b *class2DBuilder) iterations() int {
	if b.cfg.Class2D.IterationCount > 0 {
		return b.cfg.Class2D.IterationCount
	}
	if b.cfg.Class2D.UseFastVariant {
		return fastIterationDefault
	}
	return slowIterationDefault
}

func (b *class2DBuilder) OutputDir(jobName string) string {
	return jobDir(models.StageClass2D, jobName)
}

func (b *class2DBuilder) OutputFile(jobName string) string {
	return path.Join(b.OutputDir(jobName), fmt.Sprintf("run_it%03d_data.star", b.iterations()))
}

func (b *class2DBuilder) InputJobNames() []string {
	return []string{b.cfg.PrevJobNames[models.StageExtract]}
}

func (b *class2DBuilder) BuildCommand(outputDir string) []string {
	c := b.cfg.Class2D
	in := upstreamFile(models.StageExtract, b.cfg.PrevJobNames[models.StageExtract], "particles.star")
	cmd := []string{
		"relion_refine",
		"--i", in,
		"--o", path.Join(outputDir, "run"),
		"--K", i(c.ClassCount),
		"--iter", i(b.iterations()),
		"--particle_diameter", f(c.MaskDiameter),
		"--tau2_fudge", "2",
		"--ctf",
		"--zero_mask",
		"--norm", "--scale",
		"--flatten_solvent",
		"--oversampling", "1",
		"--psi_step", "12",
		"--offset_range", "5",
		"--offset_step", "2",
		"--pool", "30",
		"--pad", "2",
	}
	if c.UseFastVariant {
		cmd = append(cmd, "--grad", "--class_inactivity_threshold", "0.1")
	}
	cmd = append(cmd, "--gpu", "")
	return cmd
}

func (b *class2DBuilder) SupportsGPU() bool { return true }

// The fast variant's gradient optimiser does not support MPI.
func (b *class2DBuilder) SupportsMPI() bool { return !b.cfg.Class2D.UseFastVariant }

func (b *class2DBuilder) PostCommand(outputDir string) string {
	return successMarker(outputDir)
}

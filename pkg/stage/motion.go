package stage

import (
	"fmt"
	"path"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// motionBuilder corrects beam-induced motion. GPU mode switches to the
// MotionCor2 implementation; CPU mode uses the tool's own.
type motionBuilder struct {
	cfg BuildConfig
}

func (b *motionBuilder) Stage() models.StageKey { return models.StageMotion }

func (b *motionBuilder) Validate() error {
	m := b.cfg.Motion
	if m.PatchX < 1 || m.PatchY < 1 {
		return fmt.Errorf("motion: patch grid must be at least 1x1, got %dx%d", m.PatchX, m.PatchY)
	}
	if m.BinFactor < 1 {
		return fmt.Errorf("motion: bin factor must be >= 1, got %g", m.BinFactor)
	}
	if m.DosePerFrame < 0 {
		return fmt.Errorf("motion: dose per frame must not be negative, got %g", m.DosePerFrame)
	}
	if _, err := requireUpstream(b.cfg, models.StageImport); err != nil {
		return fmt.Errorf("motion: %w", err)
	}
	return nil
}

func (b *motionBuilder) OutputDir(jobName string) string {
	return jobDir(models.StageMotion, jobName)
}

func (b *motionBuilder) OutputFile(jobName string) string {
	return path.Join(b.OutputDir(jobName), "corrected_micrographs.star")
}

func (b *motionBuilder) InputJobNames() []string {
	return []string{b.cfg.PrevJobNames[models.StageImport]}
}

func (b *motionBuilder) BuildCommand(outputDir string) []string {
	m := b.cfg.Motion
	in := upstreamFile(models.StageImport, b.cfg.PrevJobNames[models.StageImport], "movies.star")
	cmd := []string{
		"relion_run_motioncorr",
		"--i", in,
		"--o", outputDir + "/",
		"--patch_x", i(m.PatchX),
		"--patch_y", i(m.PatchY),
		"--bin_factor", f(m.BinFactor),
		"--dose_per_frame", f(m.DosePerFrame),
		"--angpix", f(b.cfg.Optics.PixelSize),
		"--voltage", f(b.cfg.Optics.Voltage),
		"--dose_weighting",
	}
	if m.GainReference != "" {
		cmd = append(cmd, "--gainref", m.GainReference)
	}
	if m.UseGPU {
		cmd = append(cmd, "--use_motioncor2", "--gpu", "")
	} else {
		cmd = append(cmd, "--use_own", "--j", "1")
	}
	return cmd
}

func (b *motionBuilder) SupportsGPU() bool { return b.cfg.Motion.UseGPU }
func (b *motionBuilder) SupportsMPI() bool { return true }

func (b *motionBuilder) PostCommand(outputDir string) string {
	return successMarker(outputDir)
}

package stage

import (
	"fmt"
	"path"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// ctfBuilder estimates the contrast transfer function per micrograph.
type ctfBuilder struct {
	cfg BuildConfig
}

func (b *ctfBuilder) Stage() models.StageKey { return models.StageCtf }

func (b *ctfBuilder) Validate() error {
	c := b.cfg.Ctf
	if c.DefocusMin <= 0 || c.DefocusMax <= 0 {
		return fmt.Errorf("ctf: defocus bounds must be positive, got [%g, %g]", c.DefocusMin, c.DefocusMax)
	}
	if c.DefocusMin >= c.DefocusMax {
		return fmt.Errorf("ctf: defocus min %g must be below max %g", c.DefocusMin, c.DefocusMax)
	}
	if c.DefocusStep <= 0 {
		return fmt.Errorf("ctf: defocus step must be positive, got %g", c.DefocusStep)
	}
	if _, err := requireUpstream(b.cfg, models.StageMotion); err != nil {
		return fmt.Errorf("ctf: %w", err)
	}
	return nil
}

func (b *ctfBuilder) OutputDir(jobName string) string {
	return jobDir(models.StageCtf, jobName)
}

func (b *ctfBuilder) OutputFile(jobName string) string {
	return path.Join(b.OutputDir(jobName), "micrographs_ctf.star")
}

func (b *ctfBuilder) InputJobNames() []string {
	return []string{b.cfg.PrevJobNames[models.StageMotion]}
}

func (b *ctfBuilder) BuildCommand(outputDir string) []string {
	c := b.cfg.Ctf
	in := upstreamFile(models.StageMotion, b.cfg.PrevJobNames[models.StageMotion], "corrected_micrographs.star")
	return []string{
		"relion_run_ctffind",
		"--i", in,
		"--o", outputDir + "/",
		"--use_ctffind4",
		"--dFMin", f(c.DefocusMin),
		"--dFMax", f(c.DefocusMax),
		"--FStep", f(c.DefocusStep),
		"--Box", "512",
		"--ResMin", "30",
		"--ResMax", "5",
	}
}

func (b *ctfBuilder) SupportsGPU() bool { return false }
func (b *ctfBuilder) SupportsMPI() bool { return true }

func (b *ctfBuilder) PostCommand(outputDir string) string {
	return successMarker(outputDir)
}

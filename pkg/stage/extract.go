package stage

import (
	"fmt"
	"path"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// extractBuilder cuts particle boxes out of the micrographs at the picked
// coordinates.
type extractBuilder struct {
	cfg BuildConfig
}

func (b *extractBuilder) Stage() models.StageKey { return models.StageExtract }

func (b *extractBuilder) Validate() error {
	e := b.cfg.Extraction
	if e.BoxSize <= 0 {
		return fmt.Errorf("extract: box size must be positive, got %d", e.BoxSize)
	}
	if e.BoxSize%2 != 0 {
		return fmt.Errorf("extract: box size must be even, got %d", e.BoxSize)
	}
	if e.Rescale {
		if e.RescaledSize <= 0 || e.RescaledSize%2 != 0 {
			return fmt.Errorf("extract: rescaled size must be positive and even, got %d", e.RescaledSize)
		}
		if e.RescaledSize > e.BoxSize {
			return fmt.Errorf("extract: rescaled size %d exceeds box size %d", e.RescaledSize, e.BoxSize)
		}
	}
	if _, err := requireUpstream(b.cfg, models.StageCtf); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if _, err := requireUpstream(b.cfg, models.StagePick); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	return nil
}

func (b *extractBuilder) OutputDir(jobName string) string {
	return jobDir(models.StageExtract, jobName)
}

func (b *extractBuilder) OutputFile(jobName string) string {
	return path.Join(b.OutputDir(jobName), "particles.star")
}

func (b *extractBuilder) InputJobNames() []string {
	return []string{
		b.cfg.PrevJobNames[models.StageCtf],
		b.cfg.PrevJobNames[models.StagePick],
	}
}

func (b *extractBuilder) BuildCommand(outputDir string) []string {
	e := b.cfg.Extraction
	mics := upstreamFile(models.StageCtf, b.cfg.PrevJobNames[models.StageCtf], "micrographs_ctf.star")
	coords := upstreamFile(models.StagePick, b.cfg.PrevJobNames[models.StagePick], "autopick.star")
	cmd := []string{
		"relion_preprocess",
		"--i", mics,
		"--coord_list", coords,
		"--part_dir", outputDir + "/",
		"--part_star", path.Join(outputDir, "particles.star"),
		"--extract",
		"--extract_size", i(e.BoxSize),
	}
	if e.Rescale {
		cmd = append(cmd, "--scale", i(e.RescaledSize))
	}
	if e.Normalize {
		// Background radius convention: 75% of the (possibly rescaled)
		// box half-width.
		box := e.BoxSize
		if e.Rescale {
			box = e.RescaledSize
		}
		cmd = append(cmd, "--norm", "--bg_radius", i(box*75/200))
	}
	if e.InvertContrast {
		cmd = append(cmd, "--invert_contrast")
	}
	return cmd
}

func (b *extractBuilder) SupportsGPU() bool { return false }
func (b *extractBuilder) SupportsMPI() bool { return true }

func (b *extractBuilder) PostCommand(outputDir string) string {
	return successMarker(outputDir)
}

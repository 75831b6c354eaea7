package stage

import (
	"fmt"
	"path"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// pickBuilder locates particles on CTF-corrected micrographs, either with
// the Laplacian-of-Gaussian blob detector or against 2D templates.
type pickBuilder struct {
	cfg BuildConfig
}

func (b *pickBuilder) Stage() models.StageKey { return models.StagePick }

func (b *pickBuilder) Validate() error {
	p := b.cfg.Picking
	if p.UseLoG == p.UseTemplate {
		return fmt.Errorf("pick: exactly one of LoG and template picking must be selected")
	}
	if p.UseTemplate && p.TemplateRef == "" {
		return fmt.Errorf("pick: template picking requires a reference")
	}
	if p.DiameterMin <= 0 || p.DiameterMax <= 0 || p.DiameterMin >= p.DiameterMax {
		return fmt.Errorf("pick: diameter bounds [%g, %g] are invalid", p.DiameterMin, p.DiameterMax)
	}
	if _, err := requireUpstream(b.cfg, models.StageCtf); err != nil {
		return fmt.Errorf("pick: %w", err)
	}
	return nil
}

func (b *pickBuilder) OutputDir(jobName string) string {
	return jobDir(models.StagePick, jobName)
}

func (b *pickBuilder) OutputFile(jobName string) string {
	return path.Join(b.OutputDir(jobName), "autopick.star")
}

func (b *pickBuilder) InputJobNames() []string {
	return []string{b.cfg.PrevJobNames[models.StageCtf]}
}

func (b *pickBuilder) BuildCommand(outputDir string) []string {
	p := b.cfg.Picking
	in := upstreamFile(models.StageCtf, b.cfg.PrevJobNames[models.StageCtf], "micrographs_ctf.star")
	cmd := []string{
		"relion_autopick",
		"--i", in,
		"--odir", outputDir + "/",
		"--pickname", "autopick",
	}
	if p.UseLoG {
		cmd = append(cmd,
			"--LoG",
			"--LoG_diam_min", f(p.DiameterMin),
			"--LoG_diam_max", f(p.DiameterMax),
			"--LoG_adjust_threshold", f(p.Threshold),
		)
	} else {
		cmd = append(cmd,
			"--ref", p.TemplateRef,
			"--particle_diameter", f(p.DiameterMax),
			"--threshold", f(p.Threshold),
		)
	}
	return cmd
}

func (b *pickBuilder) SupportsGPU() bool { return b.cfg.Picking.UseTemplate }
func (b *pickBuilder) SupportsMPI() bool { return true }

func (b *pickBuilder) PostCommand(outputDir string) string {
	return successMarker(outputDir)
}

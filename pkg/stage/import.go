package stage

import (
	"fmt"
	"path"

	"github.com/cryoflow/cryoflow/pkg/models"
)

// importBuilder registers raw movies with the project. Import is always
// enabled and always first; it has no upstream job.
type importBuilder struct {
	cfg BuildConfig
}

func (b *importBuilder) Stage() models.StageKey { return models.StageImport }

func (b *importBuilder) Validate() error {
	if b.cfg.MoviesGlob == "" {
		return fmt.Errorf("import: movies pattern is empty")
	}
	o := b.cfg.Optics
	if o.PixelSize <= 0 {
		return fmt.Errorf("import: pixel size must be positive, got %g", o.PixelSize)
	}
	if o.Voltage <= 0 {
		return fmt.Errorf("import: voltage must be positive, got %g", o.Voltage)
	}
	return nil
}

func (b *importBuilder) OutputDir(jobName string) string {
	return jobDir(models.StageImport, jobName)
}

func (b *importBuilder) OutputFile(jobName string) string {
	return path.Join(b.OutputDir(jobName), "movies.star")
}

func (b *importBuilder) InputJobNames() []string { return nil }

func (b *importBuilder) BuildCommand(outputDir string) []string {
	o := b.cfg.Optics
	cmd := []string{
		"relion_import",
		"--do_movies",
		"--i", b.cfg.MoviesGlob,
		"--odir", outputDir + "/",
		"--ofile", "movies.star",
		"--angpix", f(o.PixelSize),
		"--kV", f(o.Voltage),
		"--Cs", f(o.SphericalAberration),
		"--Q0", f(o.AmplitudeContrast),
	}
	if o.OpticsGroupName != "" {
		cmd = append(cmd, "--optics_group_name", o.OpticsGroupName)
	}
	return cmd
}

func (b *importBuilder) SupportsGPU() bool { return false }
func (b *importBuilder) SupportsMPI() bool { return false }

func (b *importBuilder) PostCommand(outputDir string) string {
	return successMarker(outputDir)
}

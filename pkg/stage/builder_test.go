package stage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryoflow/cryoflow/pkg/models"
)

func validConfig() BuildConfig {
	return BuildConfig{
		Optics: models.OpticsConfig{
			PixelSize:           1.06,
			Voltage:             300,
			SphericalAberration: 2.7,
			AmplitudeContrast:   0.1,
		},
		Motion: models.MotionConfig{
			Enabled:      true,
			UseGPU:       true,
			PatchX:       5,
			PatchY:       5,
			BinFactor:    1,
			DosePerFrame: 1.2,
		},
		Ctf: models.CtfConfig{
			Enabled:     true,
			DefocusMin:  5000,
			DefocusMax:  50000,
			DefocusStep: 500,
		},
		Picking: models.PickingConfig{
			Enabled:     true,
			UseLoG:      true,
			DiameterMin: 100,
			DiameterMax: 150,
			Threshold:   0,
		},
		Extraction: models.ExtractionConfig{
			Enabled:        true,
			BoxSize:        256,
			Rescale:        true,
			RescaledSize:   64,
			Normalize:      true,
			InvertContrast: true,
		},
		Class2D: models.Class2DConfig{
			Enabled:           true,
			ClassCount:        50,
			ParticleThreshold: 10000,
			MaskDiameter:      160,
			UseFastVariant:    true,
		},
		MoviesGlob: "Movies/*.tiff",
		PrevJobNames: map[models.StageKey]string{
			models.StageImport:  "job001",
			models.StageMotion:  "job002",
			models.StageCtf:     "job003",
			models.StagePick:    "job004",
			models.StageExtract: "job005",
		},
	}
}

func TestAllStagesValidateWithGoodConfig(t *testing.T) {
	cfg := validConfig()
	for _, k := range append(models.PipelineOrder, models.StageClass2D) {
		b, err := New(k, cfg)
		require.NoError(t, err, k)
		assert.NoError(t, b.Validate(), k)
	}
}

func TestNewRejectsUnknownStage(t *testing.T) {
	_, err := New(models.StageKey("polish"), validConfig())
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	b, err := New(models.StageImport, validConfig())
	require.NoError(t, err)

	assert.Equal(t, "Import/job001", b.OutputDir("job001"))
	assert.Equal(t, "Import/job001/movies.star", b.OutputFile("job001"))
	assert.Empty(t, b.InputJobNames())

	cmd := strings.Join(b.BuildCommand("Import/job001"), " ")
	assert.Contains(t, cmd, "relion_import")
	assert.Contains(t, cmd, "--i Movies/*.tiff")
	assert.Contains(t, cmd, "--angpix 1.06")
	assert.Contains(t, cmd, "--kV 300")
	assert.False(t, b.SupportsMPI())
}

func TestMotionCommandChainsImportOutput(t *testing.T) {
	cfg := validConfig()
	b, err := New(models.StageMotion, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"job001"}, b.InputJobNames())
	cmd := strings.Join(b.BuildCommand("MotionCorr/job002"), " ")
	assert.Contains(t, cmd, "--i Import/job001/movies.star")
	assert.Contains(t, cmd, "--use_motioncor2")
	assert.True(t, b.SupportsGPU())

	cfg.Motion.UseGPU = false
	b, err = New(models.StageMotion, cfg)
	require.NoError(t, err)
	cmd = strings.Join(b.BuildCommand("MotionCorr/job002"), " ")
	assert.Contains(t, cmd, "--use_own")
	assert.False(t, b.SupportsGPU())
}

func TestMotionValidateRequiresUpstreamImport(t *testing.T) {
	cfg := validConfig()
	delete(cfg.PrevJobNames, models.StageImport)
	b, err := New(models.StageMotion, cfg)
	require.NoError(t, err)
	assert.Error(t, b.Validate())
}

func TestCtfValidateRejectsInvertedDefocusBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Ctf.DefocusMin = 50000
	cfg.Ctf.DefocusMax = 5000
	b, err := New(models.StageCtf, cfg)
	require.NoError(t, err)
	assert.Error(t, b.Validate())
}

func TestPickRequiresExactlyOneMethod(t *testing.T) {
	cfg := validConfig()
	cfg.Picking.UseTemplate = true // both set
	b, err := New(models.StagePick, cfg)
	require.NoError(t, err)
	assert.Error(t, b.Validate())

	cfg.Picking.UseLoG = false
	cfg.Picking.TemplateRef = ""
	b, err = New(models.StagePick, cfg)
	require.NoError(t, err)
	assert.Error(t, b.Validate())

	cfg.Picking.TemplateRef = "Select/job010/class_averages.star"
	b, err = New(models.StagePick, cfg)
	require.NoError(t, err)
	assert.NoError(t, b.Validate())
	cmd := strings.Join(b.BuildCommand("AutoPick/job004"), " ")
	assert.Contains(t, cmd, "--ref Select/job010/class_averages.star")
	assert.NotContains(t, cmd, "--LoG")
}

func TestExtractValidateAndCommand(t *testing.T) {
	cfg := validConfig()
	b, err := New(models.StageExtract, cfg)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	assert.ElementsMatch(t, []string{"job003", "job004"}, b.InputJobNames())
	cmd := strings.Join(b.BuildCommand("Extract/job005"), " ")
	assert.Contains(t, cmd, "--i CtfFind/job003/micrographs_ctf.star")
	assert.Contains(t, cmd, "--coord_list AutoPick/job004/autopick.star")
	assert.Contains(t, cmd, "--extract_size 256")
	assert.Contains(t, cmd, "--scale 64")
	assert.Contains(t, cmd, "--invert_contrast")

	cfg.Extraction.BoxSize = 255
	b, err = New(models.StageExtract, cfg)
	require.NoError(t, err)
	assert.Error(t, b.Validate(), "odd box size")

	cfg.Extraction.BoxSize = 64
	cfg.Extraction.RescaledSize = 128
	b, err = New(models.StageExtract, cfg)
	require.NoError(t, err)
	assert.Error(t, b.Validate(), "rescaled larger than box")
}

func TestClass2DFastVariant(t *testing.T) {
	cfg := validConfig()
	b, err := New(models.StageClass2D, cfg)
	require.NoError(t, err)

	cmd := strings.Join(b.BuildCommand("Class2D/job006"), " ")
	assert.Contains(t, cmd, "--grad")
	assert.Contains(t, cmd, "--iter 200")
	assert.False(t, b.SupportsMPI())
	assert.True(t, b.SupportsGPU())
	assert.Equal(t, "Class2D/job006/run_it200_data.star", b.OutputFile("job006"))

	cfg.Class2D.UseFastVariant = false
	b, err = New(models.StageClass2D, cfg)
	require.NoError(t, err)
	cmd = strings.Join(b.BuildCommand("Class2D/job006"), " ")
	assert.NotContains(t, cmd, "--grad")
	assert.Contains(t, cmd, "--iter 25")
	assert.True(t, b.SupportsMPI())
}

func TestPostCommandTouchesSuccessMarker(t *testing.T) {
	b, err := New(models.StageImport, validConfig())
	require.NoError(t, err)
	assert.Equal(t, "touch Import/job001/RELION_JOB_EXIT_SUCCESS", b.PostCommand("Import/job001"))
}

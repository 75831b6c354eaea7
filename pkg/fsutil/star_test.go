package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.star")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCountStarDataRows(t *testing.T) {
	path := writeFile(t, `
data_micrographs

loop_
_rlnMicrographName #1
_rlnCtfImage #2
mic001.mrc ctf001.ctf
mic002.mrc ctf002.ctf
mic003.mrc ctf003.ctf
`)
	n, err := CountStarDataRows(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountStarDataRowsLastLoopWins(t *testing.T) {
	path := writeFile(t, `
data_optics

loop_
_rlnOpticsGroupName #1
opticsGroup1

data_particles

loop_
_rlnImageName #1
p1.mrcs
p2.mrcs
`)
	n, err := CountStarDataRows(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountStarDataRowsSkipsCommentsAndBlanks(t *testing.T) {
	path := writeFile(t, `
data_micrographs

loop_
_rlnMicrographName #1
# a comment inside the loop

mic001.mrc
`)
	n, err := CountStarDataRows(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountStarDataRowsEmptyAndMissing(t *testing.T) {
	path := writeFile(t, "data_micrographs\n\nloop_\n_rlnMicrographName #1\n")
	n, err := CountStarDataRows(path)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = CountStarDataRows(filepath.Join(t.TempDir(), "absent.star"))
	assert.Error(t, err)
}

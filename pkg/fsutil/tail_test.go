package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTailBytesSmallFile(t *testing.T) {
	content := "line one\nline two\n"
	path := writeTemp(t, content)

	got, err := TailBytes(path, 8*1024)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestTailBytesLargeFileStartsAtLineBoundary(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("0123456789 repeated filler content for the tail window\n")
	}
	path := writeTemp(t, sb.String())

	budget := int64(1024)
	got, err := TailBytes(path, budget)
	require.NoError(t, err)

	assert.LessOrEqual(t, int64(len(got)), budget)
	// The partial first line of the window must have been dropped.
	assert.True(t, strings.HasPrefix(string(got), "0123456789"))
	assert.True(t, strings.HasSuffix(string(got), "\n"))
}

func TestTailBytesRejectsNonPositiveBudget(t *testing.T) {
	_, err := TailBytes("irrelevant", 0)
	assert.Error(t, err)
}

func TestTailBytesMissingFile(t *testing.T) {
	_, err := TailBytes(filepath.Join(t.TempDir(), "nope.log"), 1024)
	assert.Error(t, err)
}

func TestLastLines(t *testing.T) {
	b := []byte("a\nb\n\nc\nd\n")
	assert.Equal(t, []string{"c", "d"}, LastLines(b, 2))
	assert.Equal(t, []string{"a", "b", "c", "d"}, LastLines(b, 10))
	assert.Nil(t, LastLines(b, 0))
}

func TestScanErrorLines(t *testing.T) {
	b := []byte(strings.Join([]string{
		"reading images",
		"ERROR: cannot allocate",
		"progress 50%",
		"Segmentation fault (core dumped)",
		"process killed by signal",
		"done",
	}, "\n"))

	got := ScanErrorLines(b, 10)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "ERROR")
	assert.Contains(t, got[1], "Segmentation")

	capped := ScanErrorLines(b, 2)
	require.Len(t, capped, 2)
	assert.Contains(t, capped[1], "killed")
}

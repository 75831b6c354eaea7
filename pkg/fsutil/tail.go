// Package fsutil provides bounded-memory file helpers for inspecting job
// output on the shared filesystem.
package fsutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// errLinePattern matches the diagnostics worth surfacing from a failed
// job's stdout.
var errLinePattern = regexp.MustCompile(`(?i)error|FATAL|Segmentation|killed|OOM`)

// TailBytes reads at most budget bytes from the end of the file at path.
// When the file is larger than the budget, the partial first line of the
// tail window is dropped so the result always starts at a line boundary.
// Memory use is bounded by budget regardless of file size.
func TailBytes(path string, budget int64) ([]byte, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("tail budget must be positive, got %d", budget)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := info.Size()
	if size <= budget {
		return io.ReadAll(io.LimitReader(f, budget))
	}

	if _, err := f.Seek(size-budget, io.SeekStart); err != nil {
		return nil, err
	}
	buf, err := io.ReadAll(io.LimitReader(f, budget))
	if err != nil {
		return nil, err
	}

	// Seeking mid-file lands inside a line; skip up to and including the
	// first newline.
	if idx := bytes.IndexByte(buf, '\n'); idx >= 0 && idx+1 < len(buf) {
		buf = buf[idx+1:]
	}
	return buf, nil
}

// LastLines returns at most n trailing non-empty lines of b.
func LastLines(b []byte, n int) []string {
	if n <= 0 {
		return nil
	}
	all := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	lines := make([]string, 0, len(all))
	for _, l := range all {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// ScanErrorLines returns the last max lines of b that look like error
// diagnostics (error, FATAL, Segmentation, killed, OOM — case-insensitive).
func ScanErrorLines(b []byte, max int) []string {
	if max <= 0 {
		return nil
	}
	var matches []string
	for _, l := range strings.Split(string(b), "\n") {
		if errLinePattern.MatchString(l) {
			matches = append(matches, l)
		}
	}
	if len(matches) > max {
		matches = matches[len(matches)-max:]
	}
	return matches
}

package fsutil

import (
	"bufio"
	"os"
	"strings"
)

// CountStarDataRows counts the data rows of the last loop block in a STAR
// file. Header lines (data_*, loop_, _rln* column labels), comments and
// blank lines are not counted. The downstream tools write one row per
// micrograph or particle, so this is the cheap way to harvest result counts
// without a full STAR parser.
func CountStarDataRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	inLoop := false
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "data_"):
			inLoop = false
			count = 0
		case line == "loop_":
			inLoop = true
			count = 0
		case strings.HasPrefix(line, "_"):
			continue
		case inLoop:
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

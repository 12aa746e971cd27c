// Package trace parses the line-oriented textual syscall trace (SPEC_FULL.md
// §6) into a time-ordered sequence of records restricted to the target
// process, the one whose first execve record appears in the stream.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/not-matthias/fdtrace/internal/logger"
	"github.com/not-matthias/fdtrace/internal/syscallrecord"
)

// maxLineSize bounds a single trace line; paths can be long but are never
// unbounded in practice.
const maxLineSize = 1 << 20

// Parse reads a trace and returns the ordered sequence of records belonging
// to the target process. The first line is always treated as a header and
// discarded, matching the probe's output convention. Lines beginning with
// "Lost " are logged and dropped. An unparseable or unrecognized record
// aborts the whole parse with an error naming the offending line.
func Parse(r io.Reader) ([]syscallrecord.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		records    []syscallrecord.Record
		targetPID  int32
		haveTarget bool
		lineNo     int
		first      = true
	)

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if first {
			first = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "Lost ") {
			logger.Warn.Println("probe reported lost events: ", line)
			continue
		}

		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("trace:%d: %w", lineNo, err)
		}

		if !haveTarget {
			if rec.Op == syscallrecord.Execve {
				targetPID = rec.PID
				haveTarget = true
				records = append(records, rec)
			}
			continue
		}

		if rec.PID != targetPID {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trace: reading input: %w", err)
	}

	return records, nil
}

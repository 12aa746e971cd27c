// Package render prints a reconstructed Analysis as a human-readable
// report, grounded on the original implementation's print_result
// (fdtrace/src/analysis/thread.rs): per-thread, per-file sections with a
// session timeline followed by a read/write statistics table.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/not-matthias/fdtrace/internal/aggregate"
	"github.com/not-matthias/fdtrace/internal/session"
)

// Report writes a Markdown-flavored report of analysis to w.
func Report(w io.Writer, analysis session.Analysis) {
	for _, ta := range analysis.Threads {
		fmt.Fprintf(w, "\n# Thread: %d\n\n", ta.TID)
		for path, fi := range ta.Files {
			renderFile(w, path, fi)
		}
	}
}

func renderFile(w io.Writer, path string, fi *session.FileInfo) {
	fmt.Fprintf(w, "\n## File: %s\n\n", path)
	fmt.Fprintf(w, "Opened: %d times\n", len(fi.Sessions))

	var totalMs float64
	for _, s := range fi.Sessions {
		totalMs += aggregate.DurationMs(&s)
	}
	var avgMs float64
	if len(fi.Sessions) > 0 {
		avgMs = totalMs / float64(len(fi.Sessions))
	}
	fmt.Fprintf(w, "Total duration: %.2f ms\n", totalMs)
	fmt.Fprintf(w, "Avg session duration: %.2f ms\n\n", avgMs)

	for i, s := range fi.Sessions {
		fmt.Fprintf(w, "Session %d took %.2fms (idle for %.2fms)\n",
			i+1, aggregate.DurationMs(&s), aggregate.IdleTimeMs(&s))
		for j, e := range s.Events {
			verb := "Read"
			if e.Kind == session.WriteEvent {
				verb = "Write"
			}
			fmt.Fprintf(w, "  - Event %d: %s %d bytes\n", j+1, verb, e.Bytes)
		}
	}

	totalRead, totalWrite := aggregate.TotalBytes(fi)
	avgRead, avgWrite, _ := aggregate.AvgSize(fi)
	maxRead, maxWrite := aggregate.MaxSize(fi)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "Read", "Write"})
	table.Append([]string{"Total", fmt.Sprintf("%d", totalRead), fmt.Sprintf("%d", totalWrite)})
	table.Append([]string{"Average", fmt.Sprintf("%.2f", avgRead), fmt.Sprintf("%.2f", avgWrite)})
	table.Append([]string{"Max", fmt.Sprintf("%d", maxRead), fmt.Sprintf("%d", maxWrite)})
	fmt.Fprintln(w)
	table.Render()
}

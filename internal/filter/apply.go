package filter

import "github.com/not-matthias/fdtrace/internal/session"

// ApplyAnalysis returns a copy of analysis containing only the sessions
// that satisfy crit. Files left with no matching sessions, and threads left
// with no matching files, are dropped entirely.
func ApplyAnalysis(analysis session.Analysis, crit Criterion[session.FileSession]) session.Analysis {
	out := session.Analysis{Threads: make(map[int32]*session.ThreadAnalysis, len(analysis.Threads))}

	for tid, ta := range analysis.Threads {
		filtered := session.NewThreadAnalysis(tid)
		for path, fi := range ta.Files {
			for _, s := range Sessions(fi, crit) {
				filtered.AddSession(path, s)
			}
		}
		if len(filtered.Files) > 0 {
			out.Threads[tid] = filtered
		}
	}

	return out
}

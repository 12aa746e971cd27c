// Package session implements the session reconstructor: the per-thread
// state machine that turns a time-ordered sequence of syscall entry/exit
// records into a structured, per-file, per-session timeline (SPEC_FULL.md
// §3-§4.3, the core of this repository).
package session

// EventKind distinguishes a FileEvent's direction.
type EventKind int

const (
	ReadEvent EventKind = iota
	WriteEvent
)

// FileEvent is a single successful read or write observed within a session.
// Bytes is always > 0; EndTS >= StartTS.
type FileEvent struct {
	Kind    EventKind
	Bytes   uint64
	StartTS uint64
	EndTS   uint64
}

// FileSession is the lifetime of one successful open/close pair on one
// thread for one path, plus every event observed on that descriptor during
// the interval. Events are ordered by the order their entry records were
// seen, which is non-decreasing in StartTS by construction.
type FileSession struct {
	Path    string
	OpenTS  uint64
	CloseTS uint64
	Events  []FileEvent
}

// FileInfo is the unordered collection of completed sessions observed for a
// single path within one thread.
type FileInfo struct {
	Path     string
	Sessions []FileSession
}

// ThreadAnalysis is the reconstructed, per-path model for a single thread.
// It exclusively owns the sessions within it once returned by Reconstruct.
type ThreadAnalysis struct {
	TID   int32
	Files map[string]*FileInfo

	paths *pathTable
}

// Analysis is the top-level reconstructed model: every thread's analysis,
// keyed by tid.
type Analysis struct {
	Threads map[int32]*ThreadAnalysis
}

func newThreadAnalysis(tid int32) *ThreadAnalysis {
	return &ThreadAnalysis{TID: tid, Files: make(map[string]*FileInfo), paths: newPathTable()}
}

// NewThreadAnalysis constructs an empty ThreadAnalysis for tid. Exported for
// callers, such as the archive reader, that rebuild a ThreadAnalysis outside
// of Reconstruct.
func NewThreadAnalysis(tid int32) *ThreadAnalysis {
	return newThreadAnalysis(tid)
}

// AddSession records a finalized session for path, interning the path
// through ta's own path table.
func (ta *ThreadAnalysis) AddSession(path string, s FileSession) {
	fi := ta.fileInfo(path)
	s.Path = fi.Path
	fi.Sessions = append(fi.Sessions, s)
}

// intern returns the canonical string for path (see pathtable.go).
func (ta *ThreadAnalysis) intern(path string) string {
	return ta.paths.intern(path)
}

func (ta *ThreadAnalysis) fileInfo(path string) *FileInfo {
	path = ta.intern(path)
	fi, ok := ta.Files[path]
	if !ok {
		fi = &FileInfo{Path: path}
		ta.Files[path] = fi
	}
	return fi
}

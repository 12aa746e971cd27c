package session

import "github.com/cespare/xxhash/v2"

// pathTable interns path strings behind a 64-bit xxhash so that repeated
// opens of the same path within a thread share one backing string. It is
// consulted on open and when a session is filed (not on read/write), and
// FileInfo itself is still looked up in the path-keyed Files map. Paths that
// share a hash are told apart by an exact string compare, so correctness
// never depends on xxhash being collision-free.
type pathTable struct {
	byHash map[uint64][]string
}

func newPathTable() *pathTable {
	return &pathTable{byHash: make(map[uint64][]string)}
}

// intern returns the canonical string for path, sharing the backing string
// across repeated opens of the same path within a thread.
func (t *pathTable) intern(path string) string {
	h := xxhash.Sum64String(path)
	for _, p := range t.byHash[h] {
		if p == path {
			return p
		}
	}
	t.byHash[h] = append(t.byHash[h], path)
	return path
}

package session

import "github.com/not-matthias/fdtrace/internal/syscallrecord"

// lookahead walks a single thread's records with up to two-record peek,
// needed because the probe occasionally inserts one unrelated record
// between a syscall entry and its matching exit (SPEC_FULL.md §9).
type lookahead struct {
	records []syscallrecord.Record
	pos     int // index of the record last returned by next()
}

func newLookahead(records []syscallrecord.Record) *lookahead {
	return &lookahead{records: records, pos: -1}
}

// next advances and returns the current record, or false at end of stream.
func (l *lookahead) next() (syscallrecord.Record, bool) {
	l.pos++
	if l.pos >= len(l.records) {
		return syscallrecord.Record{}, false
	}
	return l.records[l.pos], true
}

// peek returns the record n positions ahead of the current one (n=1 is the
// next record, n=2 the one after that), or false if the stream doesn't
// extend that far.
func (l *lookahead) peek(n int) (syscallrecord.Record, bool) {
	idx := l.pos + n
	if idx < 0 || idx >= len(l.records) {
		return syscallrecord.Record{}, false
	}
	return l.records[idx], true
}

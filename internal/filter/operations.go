package filter

import (
	"strings"

	"github.com/not-matthias/fdtrace/internal/aggregate"
	"github.com/not-matthias/fdtrace/internal/session"
)

// Session predicates.

// PathContains matches sessions whose path contains substr.
func PathContains(substr string) Criterion[session.FileSession] {
	return Criterion[session.FileSession]{func(s session.FileSession) bool {
		return strings.Contains(s.Path, substr)
	}}
}

// PathHasSuffix matches sessions whose path ends with suffix.
func PathHasSuffix(suffix string) Criterion[session.FileSession] {
	return Criterion[session.FileSession]{func(s session.FileSession) bool {
		return strings.HasSuffix(s.Path, suffix)
	}}
}

// DurationAtLeast matches sessions open for at least ns nanoseconds.
func DurationAtLeast(ns uint64) Criterion[session.FileSession] {
	return Criterion[session.FileSession]{func(s session.FileSession) bool {
		return aggregate.Duration(&s) >= ns
	}}
}

// EventCountAtLeast matches sessions with at least n events.
func EventCountAtLeast(n int) Criterion[session.FileSession] {
	return Criterion[session.FileSession]{func(s session.FileSession) bool {
		return len(s.Events) >= n
	}}
}

// HasWrites matches sessions with at least one write event.
func HasWrites() Criterion[session.FileSession] {
	return Criterion[session.FileSession]{func(s session.FileSession) bool {
		for _, e := range s.Events {
			if e.Kind == session.WriteEvent {
				return true
			}
		}
		return false
	}}
}

// HasReads matches sessions with at least one read event.
func HasReads() Criterion[session.FileSession] {
	return Criterion[session.FileSession]{func(s session.FileSession) bool {
		for _, e := range s.Events {
			if e.Kind == session.ReadEvent {
				return true
			}
		}
		return false
	}}
}

// Event predicates.

// BytesAtLeast matches events transferring at least n bytes.
func BytesAtLeast(n uint64) Criterion[session.FileEvent] {
	return Criterion[session.FileEvent]{func(e session.FileEvent) bool {
		return e.Bytes >= n
	}}
}

// KindIs matches events of the given kind.
func KindIs(kind session.EventKind) Criterion[session.FileEvent] {
	return Criterion[session.FileEvent]{func(e session.FileEvent) bool {
		return e.Kind == kind
	}}
}

// Sessions applies a criterion to every session in fi, returning those that
// match.
func Sessions(fi *session.FileInfo, c Criterion[session.FileSession]) []session.FileSession {
	var out []session.FileSession
	for _, s := range fi.Sessions {
		if c.Eval(s) {
			out = append(out, s)
		}
	}
	return out
}

// Events applies a criterion to every event in s, returning those that
// match.
func Events(s session.FileSession, c Criterion[session.FileEvent]) []session.FileEvent {
	var out []session.FileEvent
	for _, e := range s.Events {
		if c.Eval(e) {
			out = append(out, e)
		}
	}
	return out
}

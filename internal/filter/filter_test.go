package filter

import (
	"testing"

	"github.com/not-matthias/fdtrace/internal/session"
)

func TestAndOrNot(t *testing.T) {
	isBig := Criterion[int]{func(n int) bool { return n > 10 }}
	isEven := Criterion[int]{func(n int) bool { return n%2 == 0 }}

	if !isBig.And(isEven).Eval(12) {
		t.Error("12 should satisfy big AND even")
	}
	if isBig.And(isEven).Eval(11) {
		t.Error("11 should not satisfy big AND even")
	}
	if !isBig.Or(isEven).Eval(4) {
		t.Error("4 should satisfy big OR even")
	}
	if isBig.Or(isEven).Eval(5) {
		t.Error("5 should not satisfy big OR even")
	}
	if !isBig.Not().Eval(2) {
		t.Error("2 should satisfy NOT big")
	}
}

func TestAllAny(t *testing.T) {
	gt0 := Criterion[int]{func(n int) bool { return n > 0 }}
	lt10 := Criterion[int]{func(n int) bool { return n < 10 }}
	even := Criterion[int]{func(n int) bool { return n%2 == 0 }}

	if !All(gt0, lt10, even).Eval(4) {
		t.Error("4 should satisfy All(gt0, lt10, even)")
	}
	if All(gt0, lt10, even).Eval(3) {
		t.Error("3 should not satisfy All(gt0, lt10, even) (odd)")
	}
	if Any[int]().Eval(5) {
		t.Error("Any with no criteria should be always-false")
	}
	if !All[int]().Eval(5) {
		t.Error("All with no criteria should be always-true")
	}
}

func TestPathContains(t *testing.T) {
	s := session.FileSession{Path: "/var/log/app.log"}
	if !PathContains("log").Eval(s) {
		t.Error("expected path to contain 'log'")
	}
	if PathContains("tmp").Eval(s) {
		t.Error("did not expect path to contain 'tmp'")
	}
}

func TestDurationAtLeast(t *testing.T) {
	s := session.FileSession{OpenTS: 100, CloseTS: 500}
	if !DurationAtLeast(300).Eval(s) {
		t.Error("expected duration 400 to satisfy >= 300")
	}
	if DurationAtLeast(500).Eval(s) {
		t.Error("did not expect duration 400 to satisfy >= 500")
	}
}

func TestHasReadsHasWrites(t *testing.T) {
	s := session.FileSession{Events: []session.FileEvent{
		{Kind: session.ReadEvent, Bytes: 1},
	}}
	if !HasReads().Eval(s) {
		t.Error("expected HasReads to match")
	}
	if HasWrites().Eval(s) {
		t.Error("did not expect HasWrites to match")
	}
}

func TestApplyAnalysis(t *testing.T) {
	ta := session.NewThreadAnalysis(1)
	ta.AddSession("/a", session.FileSession{OpenTS: 0, CloseTS: 1000})
	ta.AddSession("/b", session.FileSession{OpenTS: 0, CloseTS: 10})
	analysis := session.Analysis{Threads: map[int32]*session.ThreadAnalysis{1: ta}}

	filtered := ApplyAnalysis(analysis, DurationAtLeast(100))

	got, ok := filtered.Threads[1]
	if !ok {
		t.Fatal("expected thread 1 to survive filtering")
	}
	if _, ok := got.Files["/a"]; !ok {
		t.Error("expected /a to survive (duration 1000 >= 100)")
	}
	if _, ok := got.Files["/b"]; ok {
		t.Error("expected /b to be dropped (duration 10 < 100)")
	}
}

func TestSessionsAndEventsFilters(t *testing.T) {
	fi := &session.FileInfo{
		Path: "/a",
		Sessions: []session.FileSession{
			{OpenTS: 0, CloseTS: 10},
			{OpenTS: 0, CloseTS: 1000},
		},
	}
	long := Sessions(fi, DurationAtLeast(100))
	if len(long) != 1 {
		t.Fatalf("expected 1 long session, got %d", len(long))
	}

	s := session.FileSession{Events: []session.FileEvent{
		{Kind: session.ReadEvent, Bytes: 5},
		{Kind: session.ReadEvent, Bytes: 500},
	}}
	big := Events(s, BytesAtLeast(100))
	if len(big) != 1 || big[0].Bytes != 500 {
		t.Fatalf("expected 1 big event, got %+v", big)
	}
}

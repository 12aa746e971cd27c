package archive

import (
	"bytes"
	"testing"

	"github.com/not-matthias/fdtrace/internal/session"
	"github.com/not-matthias/fdtrace/internal/testutil"
)

func TestWriteReadRoundTrip(t *testing.T) {
	ta := session.NewThreadAnalysis(42)
	ta.AddSession("/var/log/app.log", session.FileSession{
		OpenTS:  10,
		CloseTS: 100,
		Events: []session.FileEvent{
			{Kind: session.ReadEvent, Bytes: 128, StartTS: 20, EndTS: 30},
			{Kind: session.WriteEvent, Bytes: 64, StartTS: 40, EndTS: 50},
		},
	})
	analysis := session.Analysis{Threads: map[int32]*session.ThreadAnalysis{42: ta}}

	var buf bytes.Buffer
	if err := Write(&buf, analysis); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	testutil.ExpectNoDiff(t, analysis, got,
		testutil.AllowUnexported(session.ThreadAnalysis{}),
		testutil.IgnoreFields(session.ThreadAnalysis{}, "paths"),
		testutil.SortSlices(func(a, b session.FileEvent) bool { return a.StartTS < b.StartTS }),
	)
}

func TestWriteEmptyAnalysis(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, session.Analysis{}); err != nil {
		t.Fatalf("Write on empty analysis: %v", err)
	}
}

// Package aggregate implements the pure, total aggregation functions over a
// reconstructed session model (SPEC_FULL.md §4.4): totals, averages,
// maxima, session duration, and idle time.
package aggregate

import "github.com/not-matthias/fdtrace/internal/session"

// NsToMs converts nanoseconds to milliseconds as 64-bit floating point.
func NsToMs(ns float64) float64 {
	return ns / 1e6
}

// TotalBytes sums the bytes of every read and write event across all
// sessions of a file.
func TotalBytes(fi *session.FileInfo) (read, write uint64) {
	for _, s := range fi.Sessions {
		for _, e := range s.Events {
			switch e.Kind {
			case session.ReadEvent:
				read += e.Bytes
			case session.WriteEvent:
				write += e.Bytes
			}
		}
	}
	return read, write
}

// AvgSize returns the arithmetic mean read and write event size in bytes.
// ok is false when either stream has zero events; no partial answer is
// synthesized in that case.
func AvgSize(fi *session.FileInfo) (readAvg, writeAvg float64, ok bool) {
	var readBytes, writeBytes float64
	var readCount, writeCount uint64

	for _, s := range fi.Sessions {
		for _, e := range s.Events {
			switch e.Kind {
			case session.ReadEvent:
				readBytes += float64(e.Bytes)
				readCount++
			case session.WriteEvent:
				writeBytes += float64(e.Bytes)
				writeCount++
			}
		}
	}

	if readCount == 0 || writeCount == 0 {
		return 0, 0, false
	}
	return readBytes / float64(readCount), writeBytes / float64(writeCount), true
}

// MaxSize returns the largest single read and write event size in bytes,
// zero when the corresponding stream is empty.
func MaxSize(fi *session.FileInfo) (maxRead, maxWrite uint64) {
	for _, s := range fi.Sessions {
		for _, e := range s.Events {
			switch e.Kind {
			case session.ReadEvent:
				if e.Bytes > maxRead {
					maxRead = e.Bytes
				}
			case session.WriteEvent:
				if e.Bytes > maxWrite {
					maxWrite = e.Bytes
				}
			}
		}
	}
	return maxRead, maxWrite
}

// Duration returns how long a session's descriptor was alive, in
// nanoseconds. Non-negative by the FileSession invariant (OpenTS <= CloseTS).
func Duration(s *session.FileSession) uint64 {
	return s.CloseTS - s.OpenTS
}

// DurationMs is Duration converted to milliseconds.
func DurationMs(s *session.FileSession) float64 {
	return NsToMs(float64(Duration(s)))
}

// IdleTime sums the gaps between the end of one event (or the session's
// open) and the start of the next, in nanoseconds.
func IdleTime(s *session.FileSession) uint64 {
	var total uint64
	prevEnd := s.OpenTS
	for _, e := range s.Events {
		total += e.StartTS - prevEnd
		prevEnd = e.EndTS
	}
	return total
}

// IdleTimeMs is IdleTime converted to milliseconds.
func IdleTimeMs(s *session.FileSession) float64 {
	return NsToMs(float64(IdleTime(s)))
}

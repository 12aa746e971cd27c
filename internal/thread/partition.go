// Package thread partitions a flat, time-ordered record sequence by thread
// id, preserving each thread's relative order. Cross-thread ordering carries
// no meaning to the reconstructor and is discarded by this step.
package thread

import "github.com/not-matthias/fdtrace/internal/syscallrecord"

// Partition groups records by TID. The returned slices preserve the
// relative order records appeared in within the input.
func Partition(records []syscallrecord.Record) map[int32][]syscallrecord.Record {
	byTID := make(map[int32][]syscallrecord.Record)
	for _, rec := range records {
		byTID[rec.TID] = append(byTID[rec.TID], rec)
	}
	return byTID
}

package archive

import (
	"io"

	"github.com/actgardner/gogen-avro/v7/container"

	"github.com/not-matthias/fdtrace/internal/session"
)

// avroBlockSize caps how many records gogen-avro's container writer buffers
// per compressed block before flushing one to the stream.
const avroBlockSize = 100

// Write serializes an Analysis as an Avro OCF stream, one record per
// finalized FileSession across all threads and paths. The container itself
// is written by gogen-avro/v7's container.Writer against hand-rolled
// AvroRecord implementations (gogenrecord.go); Read uses goavro to decode
// it, since OCF is a standard format and goavro doesn't care which library
// produced the file.
func Write(w io.Writer, analysis session.Analysis) error {
	ocf, err := container.NewWriter(w, container.Deflate, avroBlockSize)
	if err != nil {
		return err
	}

	for tid, ta := range analysis.Threads {
		for _, fi := range ta.Files {
			for _, s := range fi.Sessions {
				if err := ocf.WriteRecord(sessionToAvroRecord(tid, fi.Path, s)); err != nil {
					return err
				}
			}
		}
	}
	return ocf.Close()
}

func eventKindString(k session.EventKind) string {
	if k == session.WriteEvent {
		return "write"
	}
	return "read"
}

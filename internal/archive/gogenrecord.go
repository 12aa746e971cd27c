package archive

import (
	"encoding/binary"
	"io"

	"github.com/not-matthias/fdtrace/internal/session"
)

// avroFileSession implements the AvroRecord interface that
// github.com/actgardner/gogen-avro/v7/container's Writer expects (Schema()
// plus a binary Serialize), by hand, in the shape the gogen-avro compiler
// would emit from schemaJSON: fields are written in schema order using the
// Avro primitive encodings — zigzag varint ints/longs, length-prefixed
// strings, block-terminated arrays.
type avroFileSession struct {
	tid     int32
	path    string
	openTS  int64
	closeTS int64
	events  []avroFileEvent
}

type avroFileEvent struct {
	kind    string
	bytes   int64
	startTS int64
	endTS   int64
}

func (r avroFileSession) Schema() string { return schemaJSON }

func (r avroFileSession) Serialize(w io.Writer) error {
	if err := writeAvroLong(w, int64(r.tid)); err != nil {
		return err
	}
	if err := writeAvroString(w, r.path); err != nil {
		return err
	}
	if err := writeAvroLong(w, r.openTS); err != nil {
		return err
	}
	if err := writeAvroLong(w, r.closeTS); err != nil {
		return err
	}
	return writeAvroEventArray(w, r.events)
}

func (e avroFileEvent) serialize(w io.Writer) error {
	if err := writeAvroString(w, e.kind); err != nil {
		return err
	}
	if err := writeAvroLong(w, e.bytes); err != nil {
		return err
	}
	if err := writeAvroLong(w, e.startTS); err != nil {
		return err
	}
	return writeAvroLong(w, e.endTS)
}

// writeAvroEventArray writes the "events" field: a single block holding all
// items (if any), followed by the zero-length block that terminates an
// Avro array.
func writeAvroEventArray(w io.Writer, events []avroFileEvent) error {
	if len(events) > 0 {
		if err := writeAvroLong(w, int64(len(events))); err != nil {
			return err
		}
		for _, e := range events {
			if err := e.serialize(w); err != nil {
				return err
			}
		}
	}
	return writeAvroLong(w, 0)
}

// writeAvroLong encodes an Avro "long" as a zigzag variable-length integer.
// Avro's "int" uses the identical wire encoding, so this also backs tid.
func writeAvroLong(w io.Writer, v int64) error {
	zz := uint64((v << 1) ^ (v >> 63))
	var buf [binary.MaxVarintLen64]byte
	n := 0
	for zz >= 0x80 {
		buf[n] = byte(zz) | 0x80
		zz >>= 7
		n++
	}
	buf[n] = byte(zz)
	n++
	_, err := w.Write(buf[:n])
	return err
}

func writeAvroString(w io.Writer, s string) error {
	if err := writeAvroLong(w, int64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func sessionToAvroRecord(tid int32, path string, s session.FileSession) avroFileSession {
	events := make([]avroFileEvent, len(s.Events))
	for i, e := range s.Events {
		events[i] = avroFileEvent{
			kind:    eventKindString(e.Kind),
			bytes:   int64(e.Bytes),
			startTS: int64(e.StartTS),
			endTS:   int64(e.EndTS),
		}
	}
	return avroFileSession{
		tid:     tid,
		path:    path,
		openTS:  int64(s.OpenTS),
		closeTS: int64(s.CloseTS),
		events:  events,
	}
}

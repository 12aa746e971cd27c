package archive

import (
	"fmt"
	"io"

	"github.com/linkedin/goavro/v2"

	"github.com/not-matthias/fdtrace/internal/session"
)

// Read deserializes an Avro OCF stream written by Write back into an
// Analysis, rebuilding the per-thread, per-path grouping from the flattened
// records.
func Read(r io.Reader) (session.Analysis, error) {
	ocf, err := goavro.NewOCFReader(r)
	if err != nil {
		return session.Analysis{}, err
	}

	analysis := session.Analysis{Threads: make(map[int32]*session.ThreadAnalysis)}

	for ocf.Scan() {
		datum, err := ocf.Read()
		if err != nil {
			return session.Analysis{}, fmt.Errorf("archive: reading record: %w", err)
		}
		row, ok := datum.(map[string]interface{})
		if !ok {
			return session.Analysis{}, fmt.Errorf("archive: unexpected record shape %T", datum)
		}
		tid, path, sess, err := sessionFromAvro(row)
		if err != nil {
			return session.Analysis{}, err
		}

		ta, ok := analysis.Threads[tid]
		if !ok {
			ta = session.NewThreadAnalysis(tid)
			analysis.Threads[tid] = ta
		}
		ta.AddSession(path, sess)
	}
	if err := ocf.Err(); err != nil {
		return session.Analysis{}, fmt.Errorf("archive: %w", err)
	}

	return analysis, nil
}

func sessionFromAvro(row map[string]interface{}) (int32, string, session.FileSession, error) {
	tid, ok := row["tid"].(int32)
	if !ok {
		return 0, "", session.FileSession{}, fmt.Errorf("archive: tid field has unexpected type %T", row["tid"])
	}
	path, ok := row["path"].(string)
	if !ok {
		return 0, "", session.FileSession{}, fmt.Errorf("archive: path field has unexpected type %T", row["path"])
	}
	openTS, _ := row["openTs"].(int64)
	closeTS, _ := row["closeTs"].(int64)

	rawEvents, _ := row["events"].([]interface{})
	events := make([]session.FileEvent, 0, len(rawEvents))
	for _, re := range rawEvents {
		em, ok := re.(map[string]interface{})
		if !ok {
			continue
		}
		kind, _ := em["kind"].(string)
		bytes, _ := em["bytes"].(int64)
		startTS, _ := em["startTs"].(int64)
		endTS, _ := em["endTs"].(int64)

		ek := session.ReadEvent
		if kind == "write" {
			ek = session.WriteEvent
		}
		events = append(events, session.FileEvent{
			Kind:    ek,
			Bytes:   uint64(bytes),
			StartTS: uint64(startTS),
			EndTS:   uint64(endTS),
		})
	}

	return tid, path, session.FileSession{
		Path:    path,
		OpenTS:  uint64(openTS),
		CloseTS: uint64(closeTS),
		Events:  events,
	}, nil
}

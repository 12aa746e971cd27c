package render

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/not-matthias/fdtrace/internal/session"
)

// jsonThread and jsonFile give the thread and file levels of the JSON
// rendering stable, lower-camel field names. Sessions inside a file are
// encoded as session.FileSession values and keep its Go field names.
type jsonThread struct {
	TID   int32               `json:"tid"`
	Files map[string]jsonFile `json:"files"`
}

type jsonFile struct {
	Path     string                `json:"path"`
	Sessions []session.FileSession `json:"sessions"`
}

// JSON writes analysis to w as a JSON object keyed by thread id.
func JSON(w io.Writer, analysis session.Analysis) error {
	out := make(map[string]jsonThread, len(analysis.Threads))
	for tid, ta := range analysis.Threads {
		files := make(map[string]jsonFile, len(ta.Files))
		for path, fi := range ta.Files {
			files[path] = jsonFile{Path: fi.Path, Sessions: fi.Sessions}
		}
		out[strconv.Itoa(int(tid))] = jsonThread{TID: tid, Files: files}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

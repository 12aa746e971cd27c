// Package archive persists a reconstructed Analysis to a durable Avro
// Object Container File, grounded on the teacher's commented-out
// goavro.NewOCFReader path in driver/log/auditdriver.go — this package
// supplies the writer half that file never implemented, and a matching
// reader. The container is written with gogen-avro/v7 (gogenrecord.go) and
// read back with goavro (reader.go).
package archive

// schemaJSON is the Avro schema for one archived file-session record. Each
// OCF record flattens a single session together with its owning thread and
// path, so reading the archive back needs no external index.
const schemaJSON = `{
  "type": "record",
  "name": "FileSession",
  "namespace": "fdtrace.archive",
  "fields": [
    {"name": "tid", "type": "int"},
    {"name": "path", "type": "string"},
    {"name": "openTs", "type": "long"},
    {"name": "closeTs", "type": "long"},
    {"name": "events", "type": {"type": "array", "items": {
      "type": "record",
      "name": "FileEvent",
      "fields": [
        {"name": "kind", "type": "string"},
        {"name": "bytes", "type": "long"},
        {"name": "startTs", "type": "long"},
        {"name": "endTs", "type": "long"}
      ]
    }}}
  ]
}`

package entrylog

import "time"

// Entry is a single ingested log line. Hash is computed by the ingestion
// gateway before the entry reaches the store and is immutable afterwards.
type Entry struct {
	Seq       uint64    `json:"seq,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Hash      string    `json:"hash"`
}

// Filter selects entries by exact-match attribute equality. Zero-value
// dimensions match everything; both set means AND.
type Filter struct {
	Level   string
	Service string
}

func (f Filter) matches(e Entry) bool {
	if f.Level != "" && e.Level != f.Level {
		return false
	}
	if f.Service != "" && e.Service != f.Service {
		return false
	}
	return true
}

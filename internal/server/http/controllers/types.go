package controllers

import "time"

// Common request/response types for HTTP controllers

// logSubmission is one inbound log line. A client-supplied hash field is
// accepted for wire compatibility and then discarded; the gateway computes
// the stored hash.
type logSubmission struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Hash      string    `json:"hash,omitempty"`
}

// ingestResp acknowledges committed entries with their assigned sequences.
type ingestResp struct {
	Status string   `json:"status"`
	Seqs   []uint64 `json:"seqs"`
}

// statsResp reports ingestion and store counters.
type statsResp struct {
	Ingested int64  `json:"ingested"`
	LastSeq  uint64 `json:"last_seq"`
	Entries  uint64 `json:"entries"`
}

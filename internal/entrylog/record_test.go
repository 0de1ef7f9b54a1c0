package entrylog

import (
	"testing"
	"time"
)

func TestRecordRoundTrip(t *testing.T) {
	in := Entry{
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Level:     "INFO",
		Service:   "svc",
		Message:   "hello",
		Hash:      "abc123",
	}
	b, err := encodeRecord(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, ok := decodeRecord(b)
	if !ok {
		t.Fatalf("decode failed")
	}
	if out.Level != in.Level || out.Service != in.Service || out.Message != in.Message || out.Hash != in.Hash {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if !out.Timestamp.Equal(in.Timestamp) {
		t.Fatalf("timestamp mismatch: %v vs %v", out.Timestamp, in.Timestamp)
	}
}

func TestDecodeRejectsCorruption(t *testing.T) {
	b, err := encodeRecord(Entry{Timestamp: time.Now(), Level: "INFO", Service: "s", Message: "m", Hash: "h"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b[len(b)/2] ^= 0xff
	if _, ok := decodeRecord(b); ok {
		t.Fatalf("corrupted record must not decode")
	}
	if _, ok := decodeRecord(b[:4]); ok {
		t.Fatalf("truncated record must not decode")
	}
}

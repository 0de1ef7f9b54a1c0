package entrylog

import "encoding/binary"

// Keyspace helpers for Pebble keys.
//
// Layout (byte-wise, lexicographically sortable):
// - log/m            store metadata (last assigned sequence, 8 bytes BE)
// - log/e/{seq_be8}  one entry per sequence

var (
	metaKey     = []byte("log/m")
	entryPrefix = []byte("log/e/")
)

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// keyEntry builds the entry key with a big-endian sequence for ordering.
func keyEntry(seq uint64) []byte {
	k := make([]byte, 0, len(entryPrefix)+8)
	k = append(k, entryPrefix...)
	return appendBE8(k, seq)
}

// seqFromKey extracts the sequence from an entry key.
func seqFromKey(k []byte) uint64 {
	return binary.BigEndian.Uint64(k[len(k)-8:])
}

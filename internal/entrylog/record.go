package entrylog

import (
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"time"
)

// Record encoding: [8 bytes BE timestamp ms] | json payload | crc32c(ts|payload)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func encodeRecord(e Entry) ([]byte, error) {
	// Seq travels in the key, not the value.
	stored := e
	stored.Seq = 0
	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 8+len(payload)+4)
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(e.Timestamp.UnixMilli()))
	out = append(out, ts[:]...)
	out = append(out, payload...)

	crc := crc32.Update(0, castagnoli, out)
	var crcb [4]byte
	binary.BigEndian.PutUint32(crcb[:], crc)
	return append(out, crcb[:]...), nil
}

func decodeRecord(b []byte) (Entry, bool) {
	if len(b) < 8+4 {
		return Entry{}, false
	}
	body := b[:len(b)-4]
	expect := binary.BigEndian.Uint32(b[len(b)-4:])
	if crc32.Update(0, castagnoli, body) != expect {
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(body[8:], &e); err != nil {
		return Entry{}, false
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.UnixMilli(int64(binary.BigEndian.Uint64(body[:8]))).UTC()
	}
	return e, true
}

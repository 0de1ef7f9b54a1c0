package entrylog

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/Arescoreadmin/ares-core/internal/storage/pebble"
)

// Store provides append-only persistence of log entries.
//
// Appends are serialized through a mutex so that concurrent callers can never
// observe duplicate sequences or torn rows; reads go straight to Pebble and
// see only committed batches.
type Store struct {
	db *pebblestore.DB

	mu      sync.Mutex
	lastSeq uint64
}

// Open initializes a Store and reloads the last assigned sequence from the
// meta key, if any.
func Open(db *pebblestore.DB) (*Store, error) {
	s := &Store{db: db}
	meta, err := db.Get(metaKey)
	switch {
	case err == nil:
		if len(meta) >= 8 {
			s.lastSeq = binary.BigEndian.Uint64(meta[:8])
		}
	case errors.Is(err, pebblestore.ErrNotFound):
		// fresh store
	default:
		return nil, &StorageError{Op: "open", Err: err}
	}
	return s, nil
}

// Append persists one entry as an atomic batch and returns its sequence.
// The entry's hash must already be set; Append never computes or repairs it.
func (s *Store) Append(ctx context.Context, e Entry) (uint64, error) {
	seqs, err := s.AppendBatch(ctx, []Entry{e})
	if err != nil {
		return 0, err
	}
	return seqs[0], nil
}

// AppendBatch persists the provided entries as a single atomic batch and
// returns the assigned sequences in order.
func (s *Store) AppendBatch(ctx context.Context, entries []Entry) ([]uint64, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	for _, e := range entries {
		if e.Hash == "" {
			return nil, ErrMissingHash
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.db.NewBatch()
	defer b.Close()

	seqs := make([]uint64, len(entries))
	next := s.lastSeq
	for i, e := range entries {
		next++
		val, err := encodeRecord(e)
		if err != nil {
			return nil, &StorageError{Op: "encode", Err: err}
		}
		if err := b.Set(keyEntry(next), val, nil); err != nil {
			return nil, &StorageError{Op: "append", Err: err}
		}
		seqs[i] = next
	}

	var meta [8]byte
	binary.BigEndian.PutUint64(meta[:], next)
	if err := b.Set(metaKey, meta[:], nil); err != nil {
		return nil, &StorageError{Op: "append", Err: err}
	}
	if err := s.db.CommitBatch(ctx, b); err != nil {
		return nil, &StorageError{Op: "commit", Err: err}
	}
	s.lastSeq = next
	return seqs, nil
}

// Query returns entries matching the filter in insertion order. Unknown
// filter values yield an empty result, not an error.
func (s *Store) Query(f Filter) ([]Entry, error) {
	low := keyEntry(0)
	hi := keyEntry(^uint64(0))
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: append(hi, 0x00)})
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer iter.Close()

	out := []Entry{}
	for ok := iter.First(); ok; ok = iter.Next() {
		e, decoded := decodeRecord(iter.Value())
		if !decoded {
			return nil, &StorageError{Op: "query", Err: ErrCorruptRecord}
		}
		if !f.matches(e) {
			continue
		}
		e.Seq = seqFromKey(iter.Key())
		out = append(out, e)
	}
	if err := iter.Error(); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	return out, nil
}

// All returns every stored entry in insertion order.
func (s *Store) All() ([]Entry, error) {
	return s.Query(Filter{})
}

// LastSeq reports the most recently assigned sequence. With no delete path
// this is also the number of stored entries.
func (s *Store) LastSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeq
}

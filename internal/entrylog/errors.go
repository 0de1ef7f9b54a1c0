package entrylog

import (
	"errors"
	"fmt"
)

// StorageError reports a failure of the underlying persistence medium:
// unavailable disk, permission problems, or corruption detected on read.
// It is surfaced to the caller and never retried inside the store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("entrylog: %s failed", e.Op)
	}
	return fmt.Sprintf("entrylog: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ErrCorruptRecord marks a record whose checksum or payload failed to decode.
var ErrCorruptRecord = errors.New("corrupt record")

// ErrMissingHash rejects an append whose entry hash was never computed.
// Every persisted entry carries a non-empty hash; the gateway assigns it.
var ErrMissingHash = errors.New("entrylog: entry hash must be set before append")

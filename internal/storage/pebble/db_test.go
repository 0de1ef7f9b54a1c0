package pebblestore

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testMetrics struct {
	readBytes    int
	batchCommits int
	batchBytes   int
}

func (m *testMetrics) ObserveRead(d time.Duration, bytes int) { m.readBytes += bytes }
func (m *testMetrics) ObserveBatchCommit(d time.Duration, bytes int) {
	m.batchCommits++
	m.batchBytes += bytes
}

func newTestDB(t *testing.T) (*DB, *testMetrics) {
	t.Helper()
	metrics := &testMetrics{}
	db, err := Open(Options{
		DataDir:       t.TempDir(),
		Fsync:         FsyncModeInterval,
		FsyncInterval: 2 * time.Millisecond,
		Metrics:       metrics,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, metrics
}

func TestSetGet(t *testing.T) {
	db, metrics := newTestDB(t)

	if err := db.Set([]byte("k1"), []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := db.Get([]byte("k1"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("got %q want %q", got, "v1")
	}
	if metrics.readBytes == 0 {
		t.Fatalf("expected read metrics to record bytes")
	}

	if _, err := db.Get([]byte("missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestBatchCommitMetrics(t *testing.T) {
	db, metrics := newTestDB(t)

	b := db.NewBatch()
	if err := b.Set([]byte("a"), []byte("1"), nil); err != nil {
		t.Fatalf("batch set: %v", err)
	}
	if err := b.Set([]byte("b"), []byte("2"), nil); err != nil {
		t.Fatalf("batch set: %v", err)
	}
	if err := db.CommitBatch(context.Background(), b); err != nil {
		t.Fatalf("commit: %v", err)
	}
	b.Close()

	if metrics.batchCommits != 1 {
		t.Fatalf("want 1 batch commit, got %d", metrics.batchCommits)
	}
	if metrics.batchBytes <= 0 {
		t.Fatalf("expected positive batch bytes")
	}
}

func TestSnapshotConsistency(t *testing.T) {
	db, _ := newTestDB(t)

	key := []byte("k2")
	if err := db.Set(key, []byte("old")); err != nil {
		t.Fatalf("set: %v", err)
	}
	snap := db.NewSnapshot()
	defer snap.Close()

	if err := db.Set(key, []byte("new")); err != nil {
		t.Fatalf("set: %v", err)
	}

	valOld, closer, err := snap.Get(key)
	if err != nil {
		t.Fatalf("snap get: %v", err)
	}
	if string(valOld) != "old" {
		t.Fatalf("snapshot saw %q want %q", valOld, "old")
	}
	closer.Close()

	valNew, err := db.Get(key)
	if err != nil {
		t.Fatalf("db get: %v", err)
	}
	if string(valNew) != "new" {
		t.Fatalf("db saw %q want %q", valNew, "new")
	}
}

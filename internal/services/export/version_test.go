package exportsvc

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestReserveVersionFreshDir(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tag, path, err := reserveVersion(dir, now)
	if err != nil {
		t.Fatalf("reserveVersion: %v", err)
	}
	if tag != "20240102T030405Z" {
		t.Fatalf("tag = %q", tag)
	}
	if st, err := os.Stat(path); err != nil || !st.IsDir() {
		t.Fatalf("reserved dir %q not created: %v", path, err)
	}
}

func TestReserveVersionSkipsCollisions(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	base := now.UTC().Format(versionLayout)
	for _, name := range []string{base, base + "-1"} {
		if err := os.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	tag, _, err := reserveVersion(dir, now)
	if err != nil {
		t.Fatalf("reserveVersion: %v", err)
	}
	if tag != base+"-2" {
		t.Fatalf("tag = %q, want %q", tag, base+"-2")
	}
}

// Same-second exporters racing for a tag must each get their own directory.
func TestReserveVersionConcurrentSameSecond(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	const workers = 8
	tags := make([]string, workers)
	errs := make([]error, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			tags[i], _, errs[i] = reserveVersion(dir, now)
		}(i)
	}
	close(start)
	wg.Wait()

	seen := make(map[string]int)
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		seen[tags[i]]++
	}
	for tag, n := range seen {
		if n > 1 {
			t.Errorf("tag %q handed to %d exporters", tag, n)
		}
	}
	if len(seen) != workers {
		t.Errorf("got %d distinct tags, want %d", len(seen), workers)
	}
}

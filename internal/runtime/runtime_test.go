package runtime

import (
	"context"
	"testing"

	cfgpkg "github.com/Arescoreadmin/ares-core/internal/config"
	pebblestore "github.com/Arescoreadmin/ares-core/internal/storage/pebble"
)

func TestOpenAndHealth(t *testing.T) {
	rt, err := Open(Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways, Config: cfgpkg.Default()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rt.Close()

	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
	if rt.Store() == nil {
		t.Fatalf("store not wired")
	}
}

func TestParseFsyncMode(t *testing.T) {
	if m, err := ParseFsyncMode(""); err != nil || m != pebblestore.FsyncModeAlways {
		t.Fatalf("empty should default to always: %v %v", m, err)
	}
	if m, err := ParseFsyncMode("interval"); err != nil || m != pebblestore.FsyncModeInterval {
		t.Fatalf("interval: %v %v", m, err)
	}
	if _, err := ParseFsyncMode("sometimes"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

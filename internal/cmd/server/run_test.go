package serverrun

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	cfgpkg "github.com/Arescoreadmin/ares-core/internal/config"
	pebblestore "github.com/Arescoreadmin/ares-core/internal/storage/pebble"
)

func TestOptionsDataDirFallback(t *testing.T) {
	tests := []struct {
		name     string
		optsDir  string
		cfgDir   string
		expected string
	}{
		{"flag wins over config", "/flag/data", "/cfg/data", "/flag/data"},
		{"config fills empty flag", "", "/cfg/data", "/cfg/data"},
		{"both empty falls back to default", "", "", cfgpkg.DefaultDataDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{DataDir: tt.optsDir}
			opts.Config.DataDir = tt.cfgDir

			// mirrors the resolution order in Run
			if opts.DataDir == "" {
				opts.DataDir = opts.Config.DataDir
			}
			if opts.DataDir == "" {
				opts.DataDir = cfgpkg.DefaultDataDir()
			}

			if opts.DataDir != tt.expected {
				t.Errorf("DataDir = %q, want %q", opts.DataDir, tt.expected)
			}
		})
	}
}

func TestDataDirStoreSubdirectory(t *testing.T) {
	base := "/var/lib/ares-core"
	if got := filepath.Join(base, "store"); got != "/var/lib/ares-core/store" {
		t.Errorf("store dir = %q", got)
	}
}

// TestRunIntegration starts a real server on an ephemeral port and relies on
// context cancellation for shutdown.
func TestRunIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := cfgpkg.Default()
	cfg.LogLevel = "error"

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := Run(ctx, Options{
		DataDir:  t.TempDir(),
		HTTPAddr: ":0",
		Fsync:    pebblestore.FsyncModeNever,
		Config:   cfg,
	})
	if err != nil {
		t.Errorf("Run returned error: %v", err)
	}
}

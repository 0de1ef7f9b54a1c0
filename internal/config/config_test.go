package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.Fsync != "always" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.UploadEnabled() {
		t.Fatalf("upload must default to disabled")
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ares.json")
	body := `{"dataDir":"/srv/ares","authToken":"tok","upload":{"endpoint":"http://s3.local","bucket":"reports","retentionDays":7}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != "/srv/ares" || cfg.AuthToken != "tok" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if !cfg.UploadEnabled() || cfg.Upload.Bucket != "reports" || cfg.Upload.RetentionDays != 7 {
		t.Fatalf("upload not parsed: %+v", cfg.Upload)
	}
	// file values survive the defaults overlay
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ares.yaml")
	body := "dataDir: /srv/ares\nsigningKey: secret\nfsync: interval\nfsyncIntervalMs: 10\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SigningKey != "secret" || cfg.Fsync != "interval" || cfg.FsyncIntervalMs != 10 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestFromEnvOverlay(t *testing.T) {
	t.Setenv("ARES_HTTP_ADDR", ":9090")
	t.Setenv("ARES_AUTH_TOKEN", "direct")
	t.Setenv("ARES_UPLOAD_RETENTION_DAYS", "3")

	cfg := Default()
	if err := FromEnv(&cfg); err != nil {
		t.Fatalf("fromenv: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.AuthToken != "direct" || cfg.Upload.RetentionDays != 3 {
		t.Fatalf("overlay failed: %+v", cfg)
	}
}

func TestSecretFileIndirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("ARES_AUTH_TOKEN", "")
	t.Setenv("ARES_AUTH_TOKEN_FILE", path)

	cfg := Default()
	if err := FromEnv(&cfg); err != nil {
		t.Fatalf("fromenv: %v", err)
	}
	if cfg.AuthToken != "from-file" {
		t.Fatalf("file indirection failed: %q", cfg.AuthToken)
	}
}

func TestSecretDirectWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("ARES_SIGNING_KEY", "direct")
	t.Setenv("ARES_SIGNING_KEY_FILE", path)

	cfg := Default()
	if err := FromEnv(&cfg); err != nil {
		t.Fatalf("fromenv: %v", err)
	}
	if cfg.SigningKey != "direct" {
		t.Fatalf("direct env must win: %q", cfg.SigningKey)
	}
}

func TestResolvedExportDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/srv/ares"
	if got := cfg.ResolvedExportDir(); got != filepath.Join("/srv/ares", "exports") {
		t.Fatalf("export dir = %q", got)
	}
	cfg.ExportDir = "/mnt/exports"
	if got := cfg.ResolvedExportDir(); got != "/mnt/exports" {
		t.Fatalf("explicit export dir ignored: %q", got)
	}
}

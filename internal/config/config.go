package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file and environment.
type Config struct {
	// DataDir holds the Pebble store. Empty means the OS default app dir.
	DataDir string `json:"dataDir" yaml:"dataDir"`
	// HTTPAddr is the listen address for the HTTP API.
	HTTPAddr string `json:"httpAddr" yaml:"httpAddr"`

	// AuthToken, when non-empty, gates ingestion behind a bearer token.
	AuthToken string `json:"authToken" yaml:"authToken"`
	// SigningKey, when non-empty, enables HMAC-SHA256 signatures on export
	// artifacts. Absence means exports are unsigned, which is not an error.
	SigningKey string `json:"signingKey" yaml:"signingKey"`

	// ExportDir receives export bundles. Empty means <DataDir>/exports.
	ExportDir string `json:"exportDir" yaml:"exportDir"`

	Upload UploadConfig `json:"upload" yaml:"upload"`

	// Fsync: always|interval|never. Ingest acks imply durability only with
	// the default "always".
	Fsync           string `json:"fsync" yaml:"fsync"`
	FsyncIntervalMs int    `json:"fsyncIntervalMs" yaml:"fsyncIntervalMs"`

	LogLevel  string `json:"logLevel" yaml:"logLevel"`
	LogFormat string `json:"logFormat" yaml:"logFormat"`
}

// UploadConfig points exports at an external object store. An empty Endpoint
// disables uploading entirely.
type UploadConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Bucket   string `json:"bucket" yaml:"bucket"`
	// RetentionDays is forwarded to the object store as a retain-until date;
	// the core itself never deletes anything.
	RetentionDays int `json:"retentionDays" yaml:"retentionDays"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		HTTPAddr:  ":8080",
		Fsync:     "always",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON or YAML file (by extension) and
// returns defaults when path is empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// ResolvedExportDir returns the effective export directory.
func (c Config) ResolvedExportDir() string {
	if c.ExportDir != "" {
		return c.ExportDir
	}
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	return filepath.Join(dataDir, "exports")
}

// UploadEnabled reports whether an upload destination is configured.
func (c Config) UploadEnabled() bool { return c.Upload.Endpoint != "" }

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays ARES_* environment variables onto cfg. Secrets support a
// *_FILE variant pointing at a file whose trimmed contents become the value;
// the direct variable wins when both are set.
func FromEnv(cfg *Config) error {
	if v := os.Getenv("ARES_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ARES_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("ARES_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}

	token, err := secretFromEnv("ARES_AUTH_TOKEN")
	if err != nil {
		return err
	}
	if token != "" {
		cfg.AuthToken = token
	}
	key, err := secretFromEnv("ARES_SIGNING_KEY")
	if err != nil {
		return err
	}
	if key != "" {
		cfg.SigningKey = key
	}

	if v := os.Getenv("ARES_UPLOAD_ENDPOINT"); v != "" {
		cfg.Upload.Endpoint = v
	}
	if v := os.Getenv("ARES_UPLOAD_BUCKET"); v != "" {
		cfg.Upload.Bucket = v
	}
	if v := os.Getenv("ARES_UPLOAD_RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: ARES_UPLOAD_RETENTION_DAYS: %w", err)
		}
		cfg.Upload.RetentionDays = n
	}

	if v := os.Getenv("ARES_FSYNC"); v != "" {
		cfg.Fsync = v
	}
	if v := os.Getenv("ARES_FSYNC_INTERVAL_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: ARES_FSYNC_INTERVAL_MS: %w", err)
		}
		cfg.FsyncIntervalMs = n
	}

	if v := os.Getenv("ARES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ARES_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

// secretFromEnv reads NAME, falling back to the file named by NAME_FILE.
func secretFromEnv(name string) (string, error) {
	if v := os.Getenv(name); v != "" {
		return v, nil
	}
	path := os.Getenv(name + "_FILE")
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config: %s_FILE: %w", name, err)
	}
	return strings.TrimSpace(string(b)), nil
}

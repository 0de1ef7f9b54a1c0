// Package config loads the process configuration from an optional JSON or
// YAML file, overlaid by ARES_* environment variables. Secrets (auth token,
// signing key) additionally accept *_FILE indirection so injectors can mount
// them as files instead of exposing them in the environment.
package config

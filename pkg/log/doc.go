// Package log provides the structured logging facade used across ares-core.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. It is backed by the standard library's
// slog handlers, so output is ordinary text or JSON on stderr while call
// sites stay against this facade.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormat(log.FormatText),
//	)
//	l = l.With(log.Component("server"))
//	l.Info("server started", log.Str("http", ":8080"))
//
// # Configuration
//
// Use ApplyConfig to build a logger from a declarative Config (level and
// format strings, typically sourced from the environment).
//
// # Interop
//
// RedirectStdLog routes standard library log output (Pebble logs through it)
// into a Logger so the process emits a single stream.
package log

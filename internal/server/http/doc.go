// Package httpserver exposes the REST surface: ingestion, query, export,
// health, and stats. Handlers live in the controllers subpackage; this
// package owns the mux, middleware, and server lifecycle.
package httpserver

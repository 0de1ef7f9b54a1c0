// Package client provides the `arescore` command-line client.
//
// The commands talk to the ares-core HTTP API to ingest, query, and export
// log entries from a terminal. They are primarily intended for developers
// and operators.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it defaults
// to http://127.0.0.1:8080 and can be overridden with ARES_HTTP. Ingestion
// auth is read from ARES_AUTH_TOKEN or the --token flag.
//
// Usage
//
//	arescore log send --level INFO --service billing --message "invoice generated"
//	arescore log query --level ERROR --service billing
//	arescore export --format csv --out report.csv
//	arescore stats
package client

// Package exportsvc produces integrity-verifiable snapshots of the entry
// store. Each run renders the current entries to CSV and paginated text,
// writes a SHA-256 digest sidecar per artifact, optionally signs each
// artifact with HMAC-SHA256, packs everything plus a manifest into a tar.gz
// bundle with its own digest, and, when a destination is configured, uploads
// the lot with retention headers.
//
// Version tags are derived from the wall clock and probed against the export
// directory so two runs never share a tag; a collision within the same tick
// gets a -N suffix.
package exportsvc

// Package ingestsvc implements the ingestion gateway: it authenticates
// submissions against the configured bearer token, validates and normalizes
// them, computes the per-entry integrity hash server-side, and commits to the
// entry store. Client-supplied hash values are discarded; the hash always
// comes from this package.
package ingestsvc

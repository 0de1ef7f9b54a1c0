// Package querysvc is the read path over the entry store: exact-match level
// and service filters, ANDed when both are given, results in insertion order.
// No pagination and no re-sorting; callers needing more post-process the
// returned slice.
package querysvc

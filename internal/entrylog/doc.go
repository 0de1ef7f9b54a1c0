// Package entrylog implements the durable, append-only store of log entries.
//
// Entries are persisted in Pebble under big-endian sequence keys so that a
// forward scan yields insertion order. Each record is framed with a crc32c
// checksum; a checksum mismatch on read surfaces as a StorageError rather
// than being skipped. The last assigned sequence lives under a meta key and
// is reloaded on open, which is what makes acknowledged appends survive a
// process restart.
//
// There is no update or delete path: the store is a log, not a table.
package entrylog

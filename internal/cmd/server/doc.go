// Package serverrun wires configuration, storage, and the HTTP API into a
// running server process. It is the implementation behind `arescore server
// start` and blocks until the context is cancelled or a termination signal
// arrives.
package serverrun

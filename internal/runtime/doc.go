// Package runtime wires storage, configuration, and the entry store for a
// single-node instance. It owns the Pebble handle lifecycle; everything else
// receives the store by injection and never touches process-wide state.
package runtime

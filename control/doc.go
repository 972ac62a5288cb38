// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration and debug introspection for ring buffers.
//
// Provides concurrent-safe state handling primitives including:
//   - Config snapshots decoded into ring construction options
//   - Instrumented rings that count pushes, pops, overwrites and underflows
//   - Metrics export, debug hooks, and probe registration
package control

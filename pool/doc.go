// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity ring buffering with overwrite-on-full semantics.
// RingBuffer rounds its capacity to a power of two and wraps cursors with a mask.
// It is not safe for concurrent use; wrap it with core/concurrency.SyncRing when
// more than one goroutine touches it.
// See ring.go, ring_batch.go, ring_options.go for implementation details.
package pool

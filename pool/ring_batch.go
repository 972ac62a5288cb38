// File: pool/ring_batch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk and inspection operations on RingBuffer.

package pool

import "github.com/momentics/hioload-ring/api"

// PushBatch pushes items in order with overwrite semantics; returns len(items).
func (r *RingBuffer[T]) PushBatch(items []T) int {
	for _, it := range items {
		r.Push(it)
	}
	return len(items)
}

// PopBatch pops up to len(dst) items into dst and returns the number read.
func (r *RingBuffer[T]) PopBatch(dst []T) int {
	n := min(len(dst), r.count)
	for i := 0; i < n; i++ {
		dst[i] = r.data[r.head]
		if r.zero {
			var zero T
			r.data[r.head] = zero
		}
		r.head = (r.head + 1) & r.mask
	}
	r.count -= n
	return n
}

// Peek returns the oldest item without removing it.
func (r *RingBuffer[T]) Peek() (T, error) {
	if r.count == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmptyBuffer, "peek into empty ring buffer")
	}
	return r.data[r.head], nil
}

// Snapshot returns a copy of the held items, oldest first.
func (r *RingBuffer[T]) Snapshot() []T {
	out := make([]T, r.count)
	n := copy(out, r.data[r.head:min(r.head+r.count, len(r.data))])
	copy(out[n:], r.data[:r.count-n])
	return out
}

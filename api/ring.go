// Package api
// Author: momentics@gmail.com
//
// Overwrite-on-full ring buffer contracts.

package api

// Ring is a fixed-capacity FIFO with latest-data-wins semantics.
type Ring[T any] interface {
	// Push appends an item, discarding the oldest one when full. Always true.
	Push(item T) bool
	// Pop removes the oldest item, ErrEmptyBuffer if empty.
	Pop() (T, error)
	// Clear logically removes all items.
	Clear()
	// IsEmpty reports whether no items are held.
	IsEmpty() bool
	// IsFull reports whether the next Push overwrites.
	IsFull() bool
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// BatchRing extends Ring with bulk and inspection operations.
type BatchRing[T any] interface {
	Ring[T]
	// PushBatch pushes all items in order and returns len(items).
	PushBatch(items []T) int
	// PopBatch pops up to len(dst) items into dst, returns number read.
	PopBatch(dst []T) int
	// Peek returns the oldest item without removing it.
	Peek() (T, error)
	// Snapshot copies held items, oldest first.
	Snapshot() []T
}

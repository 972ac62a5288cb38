// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
//
// Overwrite-on-full ring buffer for bounded latest-data-wins queuing.
// Methods are NOT thread-safe; see core/concurrency.SyncRing for a guarded variant.

package pool

import (
	"github.com/momentics/hioload-ring/api"
)

// MaxRingCapacity bounds the requested capacity so rounding cannot overflow.
const MaxRingCapacity = 1 << 30

// Ensure compile-time interface compliance.
var _ api.BatchRing[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity circular FIFO (power-of-two size).
// Pushing into a full buffer discards the oldest item.
type RingBuffer[T any] struct {
	data   []T
	mask   int
	head   int // oldest occupied slot
	tail   int // next slot to write
	count  int
	usable int
	zero   bool
}

// NewRingBuffer allocates a ring buffer holding at least capacity items.
// Capacity is rounded up to the next power of two. Capacities below 1 or
// above MaxRingCapacity are rejected with api.ErrInvalidArgument; the upper
// bound keeps rounding from overflowing int on 32-bit platforms.
func NewRingBuffer[T any](capacity int, opts ...RingOption) (*RingBuffer[T], error) {
	if capacity < 1 || capacity > MaxRingCapacity {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring capacity must be in [1, MaxRingCapacity]").
			WithContext("capacity", capacity)
	}
	var cfg ringConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	size := nextPowerOfTwo(capacity)
	usable := size
	if cfg.reserveSlot {
		if size < 2 {
			size = 2
		}
		usable = size - 1
	}
	return &RingBuffer[T]{
		data:   make([]T, size),
		mask:   size - 1,
		usable: usable,
		zero:   cfg.zeroing,
	}, nil
}

// MustRingBuffer is like NewRingBuffer but panics on invalid capacity.
func MustRingBuffer[T any](capacity int, opts ...RingOption) *RingBuffer[T] {
	r, err := NewRingBuffer[T](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Push writes val at the tail. When full the oldest item is overwritten.
// Always returns true.
func (r *RingBuffer[T]) Push(val T) bool {
	r.data[r.tail] = val
	r.tail = (r.tail + 1) & r.mask
	if r.count == r.usable {
		r.head = (r.head + 1) & r.mask
		return true
	}
	r.count++
	return true
}

// Pop removes and returns the oldest item.
func (r *RingBuffer[T]) Pop() (T, error) {
	var res T
	if r.count == 0 {
		return res, api.NewError(api.ErrCodeEmptyBuffer, "pop from empty ring buffer")
	}
	res = r.data[r.head]
	if r.zero {
		var zero T
		r.data[r.head] = zero
	}
	r.head = (r.head + 1) & r.mask
	r.count--
	return res, nil
}

// Clear resets the cursors. Storage is zeroed only with WithZeroing.
func (r *RingBuffer[T]) Clear() {
	r.head, r.tail, r.count = 0, 0, 0
	if r.zero {
		clear(r.data)
	}
}

// IsEmpty reports whether the buffer holds no items.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the next Push will overwrite the oldest item.
func (r *RingBuffer[T]) IsFull() bool {
	return r.count == r.usable
}

// Len returns number of items in the buffer.
func (r *RingBuffer[T]) Len() int {
	return r.count
}

// Cap returns the rounded power-of-two capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}

// Usable returns how many items fit before Push starts overwriting.
func (r *RingBuffer[T]) Usable() int {
	return r.usable
}

func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}

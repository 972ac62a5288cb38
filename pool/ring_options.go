// File: pool/ring_options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for RingBuffer construction.

package pool

// RingOption customizes ring buffer initialization.
type RingOption func(*ringConfig)

type ringConfig struct {
	reserveSlot bool
	zeroing     bool
}

// WithReservedSlot keeps one slot free so that at most Cap()-1 items are held.
// A requested capacity of 1 is rounded to 2.
func WithReservedSlot() RingOption {
	return func(c *ringConfig) {
		c.reserveSlot = true
	}
}

// WithZeroing zeroes slots vacated by Pop and all storage on Clear,
// releasing references held by the buffer.
func WithZeroing() RingOption {
	return func(c *ringConfig) {
		c.zeroing = true
	}
}

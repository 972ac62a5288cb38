// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_property_test.go — randomized checks against a reference FIFO.
package pool_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

// model mirrors overwrite-on-full semantics on top of an unbounded queue.
type model struct {
	q      *queue.Queue
	usable int
}

func (m *model) push(v int) {
	if m.q.Length() == m.usable {
		m.q.Remove()
	}
	m.q.Add(v)
}

func (m *model) pop() (int, bool) {
	if m.q.Length() == 0 {
		return 0, false
	}
	return m.q.Remove().(int), true
}

func (m *model) items() []int {
	out := make([]int, m.q.Length())
	for i := range out {
		out[i] = m.q.Get(i).(int)
	}
	return out
}

func TestRingPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		requested := 1 + rnd.Intn(40)
		var opts []pool.RingOption
		if seed%2 == 1 {
			opts = append(opts, pool.WithReservedSlot())
		}
		ring, err := pool.NewRingBuffer[int](requested, opts...)
		require.NoError(t, err)
		m := &model{q: queue.New(), usable: ring.Usable()}

		for i := 0; i < 5000; i++ {
			switch rnd.Intn(10) {
			case 0, 1, 2, 3, 4:
				val := rnd.Intn(100000)
				require.True(t, ring.Push(val))
				m.push(val)
			case 5, 6, 7:
				got, err := ring.Pop()
				want, ok := m.pop()
				if !ok {
					require.ErrorIs(t, err, api.ErrEmptyBuffer)
					break
				}
				require.NoError(t, err)
				require.Equal(t, want, got, "seed %d op %d", seed, i)
			case 8:
				batch := make([]int, rnd.Intn(2*ring.Cap()+1))
				for j := range batch {
					batch[j] = rnd.Intn(100000)
					m.push(batch[j])
				}
				require.Equal(t, len(batch), ring.PushBatch(batch))
			case 9:
				if rnd.Intn(20) == 0 {
					ring.Clear()
					m.q = queue.New()
				}
			}
			require.Equal(t, m.q.Length(), ring.Len())
			require.Equal(t, ring.Len() == 0, ring.IsEmpty())
			require.Equal(t, ring.Len() == ring.Usable(), ring.IsFull())
			require.LessOrEqual(t, ring.Len(), ring.Cap())
		}
		assert.Equal(t, m.items(), ring.Snapshot())
	}
}

func TestRingCapacityIsSmallestPowerOfTwo(t *testing.T) {
	for r := 1; r <= 2048; r++ {
		c := pool.MustRingBuffer[int](r).Cap()
		assert.Zero(t, c&(c-1), "capacity %d not a power of two", c)
		assert.GreaterOrEqual(t, c, r)
		if c > 1 {
			assert.Less(t, c/2, r)
		}
	}
}

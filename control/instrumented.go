// control/instrumented.go
// Author: momentics <momentics@gmail.com>
//
// Counting wrapper that makes overwrite drops observable.

package control

import (
	"log"

	"go.uber.org/atomic"

	"github.com/momentics/hioload-ring/api"
)

// RingStats is a point-in-time view of an InstrumentedRing.
type RingStats struct {
	Pushes     int64
	Pops       int64
	Overwrites int64
	Underflows int64
	Len        int
	Cap        int
}

// dropReporter is implemented by rings that can check fullness and push
// under one lock, e.g. concurrency.SyncRing.
type dropReporter[T any] interface {
	PushReportDrop(item T) bool
}

// InstrumentedRing counts operations on an inner ring.
// Counters are atomic; the inner ring keeps its own concurrency contract.
// Overwrites are counted exactly only when the inner ring reports drops
// itself (PushReportDrop); otherwise IsFull is checked before Push, which is
// exact only for single-goroutine use.
type InstrumentedRing[T any] struct {
	inner      api.Ring[T]
	reporter   dropReporter[T]
	pushes     atomic.Int64
	pops       atomic.Int64
	overwrites atomic.Int64
	underflows atomic.Int64
	logger     *log.Logger
}

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*InstrumentedRing[any])(nil)

// Instrument wraps inner. logger may be nil.
func Instrument[T any](inner api.Ring[T], logger *log.Logger) *InstrumentedRing[T] {
	r := &InstrumentedRing[T]{inner: inner, logger: logger}
	if dr, ok := inner.(dropReporter[T]); ok {
		r.reporter = dr
	}
	return r
}

// Push forwards to the inner ring, counting an overwrite if it was full.
func (r *InstrumentedRing[T]) Push(item T) bool {
	r.pushes.Inc()
	if r.reporter != nil {
		if r.reporter.PushReportDrop(item) {
			r.overwrites.Inc()
		}
		return true
	}
	if r.inner.IsFull() {
		r.overwrites.Inc()
	}
	return r.inner.Push(item)
}

// Pop forwards to the inner ring, counting underflows.
func (r *InstrumentedRing[T]) Pop() (T, error) {
	v, err := r.inner.Pop()
	if err != nil {
		if n := r.underflows.Inc(); r.logger != nil {
			r.logger.Printf("[ring] pop underflow #%d: %v", n, err)
		}
		return v, err
	}
	r.pops.Inc()
	return v, nil
}

func (r *InstrumentedRing[T]) Clear()        { r.inner.Clear() }
func (r *InstrumentedRing[T]) IsEmpty() bool { return r.inner.IsEmpty() }
func (r *InstrumentedRing[T]) IsFull() bool  { return r.inner.IsFull() }
func (r *InstrumentedRing[T]) Len() int      { return r.inner.Len() }
func (r *InstrumentedRing[T]) Cap() int      { return r.inner.Cap() }

// Stats returns the current counters.
func (r *InstrumentedRing[T]) Stats() RingStats {
	return RingStats{
		Pushes:     r.pushes.Load(),
		Pops:       r.pops.Load(),
		Overwrites: r.overwrites.Load(),
		Underflows: r.underflows.Load(),
		Len:        r.inner.Len(),
		Cap:        r.inner.Cap(),
	}
}

// Publish writes Stats to mr under prefix.
func (r *InstrumentedRing[T]) Publish(mr *MetricsRegistry, prefix string) {
	mr.SetRingStats(prefix, r.Stats())
}

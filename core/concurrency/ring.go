// File: core/concurrency/ring.go
// Package concurrency provides mutex-guarded ring buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SyncRing serializes access to an overwrite-on-full ring so that several
// goroutines may push and pop. Lock and state are padded to avoid false sharing.

package concurrency

import (
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

// Ensure compile-time interface compliance.
var _ api.BatchRing[any] = (*SyncRing[any])(nil)

// SyncRing wraps a BatchRing with a mutex.
type SyncRing[T any] struct {
	_    cpu.CacheLinePad
	mu   sync.Mutex
	ring api.BatchRing[T]
	_    cpu.CacheLinePad
}

// NewSyncRing allocates a pool.RingBuffer and guards it.
func NewSyncRing[T any](capacity int, opts ...pool.RingOption) (*SyncRing[T], error) {
	r, err := pool.NewRingBuffer[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncRing[T]{ring: r}, nil
}

// WrapRing guards an existing ring. The caller must stop using r directly.
func WrapRing[T any](r api.BatchRing[T]) *SyncRing[T] {
	return &SyncRing[T]{ring: r}
}

// Push appends item, overwriting the oldest when full.
func (s *SyncRing[T]) Push(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Push(item)
}

// PushIfNotFull appends item only when doing so would not overwrite.
// It reports whether the item was stored.
func (s *SyncRing[T]) PushIfNotFull(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ring.IsFull() {
		return false
	}
	return s.ring.Push(item)
}

// PushReportDrop appends item and reports whether the oldest item was discarded.
func (s *SyncRing[T]) PushReportDrop(item T) (dropped bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped = s.ring.IsFull()
	s.ring.Push(item)
	return dropped
}

// Pop removes the oldest item.
func (s *SyncRing[T]) Pop() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Pop()
}

// Clear empties the ring.
func (s *SyncRing[T]) Clear() {
	s.mu.Lock()
	s.ring.Clear()
	s.mu.Unlock()
}

// IsEmpty reports whether no items are held.
func (s *SyncRing[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.IsEmpty()
}

// IsFull reports whether the next Push overwrites.
func (s *SyncRing[T]) IsFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.IsFull()
}

// Len returns number of items currently in buffer.
func (s *SyncRing[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Len()
}

// Cap returns fixed buffer capacity.
func (s *SyncRing[T]) Cap() int {
	return s.ring.Cap()
}

// PushBatch pushes items atomically with respect to other callers.
func (s *SyncRing[T]) PushBatch(items []T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.PushBatch(items)
}

// PopBatch pops up to len(dst) items atomically.
func (s *SyncRing[T]) PopBatch(dst []T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.PopBatch(dst)
}

// Peek returns the oldest item without removing it.
func (s *SyncRing[T]) Peek() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Peek()
}

// Snapshot copies held items, oldest first.
func (s *SyncRing[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Snapshot()
}

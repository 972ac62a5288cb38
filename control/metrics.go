// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Metrics registry fed by instrumented rings.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds published metric values keyed by dotted names.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// SetRingStats publishes every field of s under prefix in one update.
func (mr *MetricsRegistry) SetRingStats(prefix string, s RingStats) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.metrics[prefix+".pushes"] = s.Pushes
	mr.metrics[prefix+".pops"] = s.Pops
	mr.metrics[prefix+".overwrites"] = s.Overwrites
	mr.metrics[prefix+".underflows"] = s.Underflows
	mr.metrics[prefix+".len"] = s.Len
	mr.metrics[prefix+".cap"] = s.Cap
	mr.updated = time.Now()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// LastUpdated returns the time of the most recent write, zero if none.
func (mr *MetricsRegistry) LastUpdated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

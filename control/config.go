// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with reload propagation, and decoding of
// ring buffer settings from store snapshots.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

// Recognized ring configuration keys.
const (
	KeyRingCapacity    = "ring.capacity"
	KeyRingReserveSlot = "ring.reserve_slot"
	KeyRingZeroing     = "ring.zeroing"
)

// DefaultRingCapacity is used when ring.capacity is absent.
const DefaultRingCapacity = 1024

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig merges new values and notifies listeners synchronously.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// RingConfig is the decoded ring section of a config snapshot.
type RingConfig struct {
	Capacity    int
	ReserveSlot bool
	Zeroing     bool
}

// Options converts c into construction options.
func (c RingConfig) Options() []pool.RingOption {
	var opts []pool.RingOption
	if c.ReserveSlot {
		opts = append(opts, pool.WithReservedSlot())
	}
	if c.Zeroing {
		opts = append(opts, pool.WithZeroing())
	}
	return opts
}

// DecodeRingConfig reads ring.* keys from snapshot.
func DecodeRingConfig(snapshot map[string]any) (RingConfig, error) {
	cfg := RingConfig{Capacity: DefaultRingCapacity}
	if v, ok := snapshot[KeyRingCapacity]; ok {
		n, ok := toInt(v)
		if !ok {
			return cfg, invalidKey(KeyRingCapacity, v)
		}
		cfg.Capacity = n
	}
	for key, dst := range map[string]*bool{
		KeyRingReserveSlot: &cfg.ReserveSlot,
		KeyRingZeroing:     &cfg.Zeroing,
	} {
		v, ok := snapshot[key]
		if !ok {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return cfg, invalidKey(key, v)
		}
		*dst = b
	}
	return cfg, nil
}

// NewRingFromConfig builds a ring from the store's current snapshot.
func NewRingFromConfig[T any](cs *ConfigStore) (*pool.RingBuffer[T], error) {
	cfg, err := DecodeRingConfig(cs.GetSnapshot())
	if err != nil {
		return nil, err
	}
	return pool.NewRingBuffer[T](cfg.Capacity, cfg.Options()...)
}

func invalidKey(key string, v any) error {
	return api.NewError(api.ErrCodeInvalidArgument, "invalid ring config value").
		WithContext("key", key).
		WithContext("value", v)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

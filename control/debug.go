// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry for runtime inspection of ring state.

package control

import (
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RingState is the probe payload for a registered ring.
type RingState struct {
	Len     int
	Cap     int
	IsEmpty bool
	IsFull  bool
}

// RegisterRingProbe exposes r's occupancy under name.
// r must be safe to read from the goroutine calling DumpState.
func RegisterRingProbe[T any](dp *DebugProbes, name string, r api.Ring[T]) {
	dp.RegisterProbe(name, func() any {
		return RingState{
			Len:     r.Len(),
			Cap:     r.Cap(),
			IsEmpty: r.IsEmpty(),
			IsFull:  r.IsFull(),
		}
	})
}

// RegisterPlatformProbes sets platform facts relevant to ring padding.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOARCH
	})
	dp.RegisterProbe("platform.cacheline", func() any {
		return int(unsafe.Sizeof(cpu.CacheLinePad{}))
	})
}

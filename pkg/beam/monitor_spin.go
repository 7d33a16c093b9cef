//go:build beam_spin

package beam

import (
	"runtime"
	"sync/atomic"
)

// monitor is the spin backend for targets without blocking primitives: a
// CAS spin-lock plus a yield-and-retry wait loop.
type monitor struct {
	state atomic.Int32
}

func (m *monitor) init() {}

func (m *monitor) lock() {
	for !m.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

func (m *monitor) unlock() { m.state.Store(0) }

// wait polls ready, releasing the lock and yielding between attempts. The
// lock must be held on entry and is held again on return.
func (m *monitor) wait(ready func() bool) {
	for !ready() {
		m.unlock()
		runtime.Gosched()
		m.lock()
	}
}

func (m *monitor) wake() {}

//go:build !beam_spin

package beam

import "sync"

// monitor is the blocking backend: a mutex paired with a condition
// variable, so Recv parks the goroutine instead of spinning.
type monitor struct {
	mu   sync.Mutex
	cond sync.Cond
}

func (m *monitor) init() { m.cond.L = &m.mu }

func (m *monitor) lock() { m.mu.Lock() }

func (m *monitor) unlock() { m.mu.Unlock() }

// wait blocks the caller until ready reports true. The lock must be held
// on entry and is held again on return.
func (m *monitor) wait(ready func() bool) {
	for !ready() {
		m.cond.Wait()
	}
}

// wake releases every goroutine parked in wait.
func (m *monitor) wake() { m.cond.Broadcast() }

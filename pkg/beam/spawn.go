package beam

import "fmt"

// JoinHandle waits for the final return value of a task started by Spawn.
type JoinHandle[R any] struct {
	done   chan struct{}
	result R
	err    error
}

// Join blocks until the task finishes and returns its result. A non-nil
// error means the task panicked; the panic value is carried in the error.
func (h *JoinHandle[R]) Join() (R, error) {
	<-h.done
	return h.result, h.err
}

// Done is closed once the task has finished.
func (h *JoinHandle[R]) Done() <-chan struct{} { return h.done }

// Spawn creates a beam, starts task in its own goroutine holding the
// sending side, and blocks until the task sends its early value or
// releases the sender without sending. The returned JoinHandle yields the
// task's final return value independently of whether the early value was
// ever sent. The sender is closed on every task exit path, so a task that
// returns or panics before sending still unblocks the caller.
func Spawn[T, R any](task func(tx *Sender[T]) R) (T, bool, *JoinHandle[R]) {
	tx, rx := New[T]()
	h := &JoinHandle[R]{done: make(chan struct{})}

	go func() {
		defer close(h.done)
		defer tx.Close()
		defer func() {
			if p := recover(); p != nil {
				h.err = fmt.Errorf("beam: task panicked: %v", p)
			}
		}()
		h.result = task(tx)
	}()

	v, ok := rx.Recv()
	return v, ok, h
}

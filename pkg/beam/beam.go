package beam

import (
	"time"

	"github.com/google/uuid"
)

// inner is the single shared allocation behind one beam: the value cell
// plus the monitor guarding it. It is jointly held by one Sender and one
// Receiver and torn down by whichever of the two releases its stake last.
type inner[T any] struct {
	mon  monitor
	cell cell[T]
}

func (in *inner[T]) releaseSender() {
	in.mon.lock()
	if in.cell.dropSender() {
		in.cell.destroy()
	}
	in.mon.unlock()
	in.mon.wake()
}

func (in *inner[T]) releaseReceiver() {
	in.mon.lock()
	if in.cell.dropReceiver() {
		in.cell.destroy()
	}
	in.mon.unlock()
}

// Sender is the producing side of a beam. It supports exactly one Send;
// Close releases it without sending. A Sender may be handed to another
// goroutine but must not be shared between goroutines.
type Sender[T any] struct {
	in        *inner[T]
	id        uuid.UUID
	createdAt time.Time
}

// Receiver is the consuming side of a beam. It supports exactly one Recv;
// Close releases it without receiving.
type Receiver[T any] struct {
	in        *inner[T]
	id        uuid.UUID
	createdAt time.Time
}

// New creates a beam and returns its two sides. Both handles reference
// the same slot, which starts empty with both stakes held.
func New[T any]() (*Sender[T], *Receiver[T]) {
	in := &inner[T]{}
	in.mon.init()
	in.cell.flags = flagSender | flagReceiver

	id := uuid.New()
	createdAt := time.Now().UTC()

	return &Sender[T]{in: in, id: id, createdAt: createdAt},
		&Receiver[T]{in: in, id: id, createdAt: createdAt}
}

// Send delivers v to the receiving side and spends the sender. It never
// blocks; if the receiver is already gone the value is silently discarded
// during teardown. Sending on a spent Sender panics.
func (tx *Sender[T]) Send(v T) {
	in := tx.in
	if in == nil {
		panic("beam: Send on a spent Sender")
	}
	tx.in = nil

	in.mon.lock()
	in.cell.put(v)
	in.mon.unlock()
	in.mon.wake()

	in.releaseSender()
}

// Close releases the sender without sending, which makes a pending or
// future Recv return with no value. Extra calls are no-ops.
func (tx *Sender[T]) Close() {
	in := tx.in
	if in == nil {
		return
	}
	tx.in = nil
	in.releaseSender()
}

// ID identifies the beam this sender belongs to; the paired Receiver
// reports the same value.
func (tx *Sender[T]) ID() uuid.UUID { return tx.id }

// CreatedAt is the beam's creation time (UTC).
func (tx *Sender[T]) CreatedAt() time.Time { return tx.createdAt }

// Recv blocks until the sender delivers a value or hangs up, then spends
// the receiver. The second return is false when the sender released its
// stake without sending. Receiving on a spent Receiver panics.
func (rx *Receiver[T]) Recv() (T, bool) {
	in := rx.in
	if in == nil {
		panic("beam: Recv on a spent Receiver")
	}
	rx.in = nil

	in.mon.lock()
	in.mon.wait(func() bool { return in.cell.hasData() || in.cell.hungUp() })

	var v T
	var ok bool
	if in.cell.hasData() {
		v = in.cell.take()
		ok = true
	}
	in.mon.unlock()

	in.releaseReceiver()
	return v, ok
}

// Close releases the receiver without receiving. A value sent afterwards
// is accepted and discarded. Extra calls are no-ops.
func (rx *Receiver[T]) Close() {
	in := rx.in
	if in == nil {
		return
	}
	rx.in = nil
	in.releaseReceiver()
}

// ID identifies the beam this receiver belongs to.
func (rx *Receiver[T]) ID() uuid.UUID { return rx.id }

// CreatedAt is the beam's creation time (UTC).
func (rx *Receiver[T]) CreatedAt() time.Time { return rx.createdAt }

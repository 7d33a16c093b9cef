package beam

type flags uint8

const (
	flagData flags = 1 << iota
	flagSender
	flagReceiver
)

// cell is the shared slot guarded by the beam's monitor. Every method
// requires the monitor lock to be held by the caller.
type cell[T any] struct {
	flags flags
	value T
}

func (c *cell[T]) put(v T) {
	if c.flags&flagData != 0 {
		panic("beam: send into a cell that already holds data")
	}
	c.value = v
	c.flags |= flagData
}

func (c *cell[T]) take() T {
	v := c.value
	var zero T
	c.value = zero
	c.flags &^= flagData
	return v
}

func (c *cell[T]) hasData() bool {
	return c.flags&flagData != 0
}

// hungUp reports whether either side has already released its stake.
func (c *cell[T]) hungUp() bool {
	return c.flags&(flagSender|flagReceiver) != flagSender|flagReceiver
}

// dropSender clears the sender's stake and reports whether it was the
// last one held, in which case the caller must tear the cell down.
func (c *cell[T]) dropSender() bool {
	c.flags &^= flagSender
	return c.flags&flagReceiver == 0
}

func (c *cell[T]) dropReceiver() bool {
	c.flags &^= flagReceiver
	return c.flags&flagSender == 0
}

// destroy releases a value that was sent but never received, so the
// payload does not outlive the beam.
func (c *cell[T]) destroy() {
	if c.hasData() {
		_ = c.take()
	}
}

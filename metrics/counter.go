package metrics

import "time"

// Counter accumulates the work one algorithm run performs.
// All methods are nil-safe no-ops on a nil receiver, so algorithm bodies
// tally unconditionally without guarding.
type Counter struct {
	comparisons uint64
	moves       uint64
	accesses    uint64

	start   time.Time
	end     time.Time
	running bool
}

// NewCounter returns a zeroed Counter ready for one run.
func NewCounter() *Counter {
	return &Counter{}
}

// AddComparisons tallies n comparisons. n <= 0 is ignored.
func (c *Counter) AddComparisons(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.comparisons += uint64(n)
}

// AddMoves tallies n element writes into the working array. n <= 0 is ignored.
func (c *Counter) AddMoves(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.moves += uint64(n)
}

// AddAccesses tallies n raw element reads/writes. n <= 0 is ignored.
func (c *Counter) AddAccesses(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.accesses += uint64(n)
}

// Start marks the beginning of the timed run.
func (c *Counter) Start() {
	if c == nil {
		return
	}
	c.start = time.Now()
	c.running = true
}

// Stop marks the end of the timed run. Stopping twice keeps the first end.
func (c *Counter) Stop() {
	if c == nil || !c.running {
		return
	}
	c.end = time.Now()
	c.running = false
}

// Comparisons returns the comparison tally.
func (c *Counter) Comparisons() uint64 {
	if c == nil {
		return 0
	}

	return c.comparisons
}

// Moves returns the element-move tally.
func (c *Counter) Moves() uint64 {
	if c == nil {
		return 0
	}

	return c.moves
}

// Accesses returns the raw-access tally.
func (c *Counter) Accesses() uint64 {
	if c == nil {
		return 0
	}

	return c.accesses
}

// Elapsed returns the run duration: live (time since Start) while the
// run is still in flight, final (Stop minus Start) afterwards.
// Zero before Start is called.
func (c *Counter) Elapsed() time.Duration {
	if c == nil || c.start.IsZero() {
		return 0
	}
	if c.running {
		return time.Since(c.start)
	}

	return c.end.Sub(c.start)
}

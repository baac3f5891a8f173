package trace

import "fmt"

// Cursor navigates a finished Trace one step at a time, forward or
// backward. Because each Step owns its snapshot, the cursor never
// reconstructs state — moving is just re-reading a stored step, which is
// what makes k steps forward followed by k steps back land exactly on
// the starting snapshot.
type Cursor struct {
	trace Trace
	pos   int
}

// NewCursor returns a Cursor positioned at step 0.
// Returns ErrEmptyTrace for a trace with no steps.
func NewCursor(t Trace) (*Cursor, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTrace
	}

	return &Cursor{trace: t}, nil
}

// Pos returns the current step index.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of steps under the cursor.
func (c *Cursor) Len() int { return c.trace.Len() }

// Current returns the step at the current position.
func (c *Cursor) Current() Step { return c.trace[c.pos] }

// Forward advances one step and returns it.
// At the last step it stays put and reports ok=false.
func (c *Cursor) Forward() (Step, bool) {
	if c.pos >= c.trace.Len()-1 {
		return c.trace[c.pos], false
	}
	c.pos++

	return c.trace[c.pos], true
}

// Back moves one step backward and returns it.
// At step 0 it stays put and reports ok=false.
func (c *Cursor) Back() (Step, bool) {
	if c.pos <= 0 {
		return c.trace[c.pos], false
	}
	c.pos--

	return c.trace[c.pos], true
}

// Seek jumps to step i. Returns ErrStepOutOfRange for i outside [0, Len).
func (c *Cursor) Seek(i int) (Step, error) {
	if i < 0 || i >= c.trace.Len() {
		return Step{}, fmt.Errorf("%w: %d of %d", ErrStepOutOfRange, i, c.trace.Len())
	}
	c.pos = i

	return c.trace[c.pos], nil
}

// Rewind returns to step 0.
func (c *Cursor) Rewind() Step {
	c.pos = 0

	return c.trace[0]
}

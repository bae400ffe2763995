package snake

import "time"

// Driver turns a stream of frame timestamps into discrete ticks using an
// accumulator, so game speed is independent of the frame rate.
type Driver struct {
	last     time.Duration
	started  bool
	acc      time.Duration
	maxTicks int
}

// NewDriver creates a driver that runs at most maxTicks ticks per frame.
func NewDriver(maxTicks int) *Driver {
	if maxTicks <= 0 {
		maxTicks = 1
	}
	return &Driver{maxTicks: maxTicks}
}

// Reset forgets the previous frame and drops accumulated time.
// The next frame is treated as the first one and contributes no delta.
func (d *Driver) Reset() {
	d.started = false
	d.last = 0
	d.acc = 0
}

// Advance processes one frame at time now.
//
// While suspended only the frame timestamp moves, so no burst of queued
// ticks fires when the suspension ends. Otherwise tick runs once per full
// interval in the accumulator; interval is re-read after each tick so a speed
// change applies to the next one. tick returns false to stop ticking for
// this frame (game over, freeze); the remaining accumulator is dropped.
// Advance returns the number of ticks run.
func (d *Driver) Advance(now time.Duration, suspended bool, interval func() time.Duration, tick func() bool) int {
	if !d.started {
		d.started = true
		d.last = now
	}
	delta := now - d.last
	d.last = now

	if suspended {
		return 0
	}
	if delta > 0 {
		d.acc += delta
	}

	ticks := 0
	for {
		step := interval()
		if step <= 0 || d.acc < step {
			break
		}
		if ticks >= d.maxTicks {
			d.acc = 0
			break
		}
		d.acc -= step
		ticks++
		if !tick() {
			d.acc = 0
			break
		}
	}
	return ticks
}

package audio

import "github.com/gopxl/beep"

// Crossfader plays one streamer at a time and fades linearly between them.
// A nil streamer is silence, so fading to nil is a fade out.
//
// It is not safe for concurrent use; once handed to the speaker, call its
// methods under speaker.Lock.
type Crossfader struct {
	current  beep.Streamer
	previous beep.Streamer
	fadeLen  int
	fadePos  int
	buf      [][2]float64
}

// NewCrossfader creates a silent crossfader.
func NewCrossfader() *Crossfader {
	return &Crossfader{}
}

// Switch starts fading from the current streamer to next over n samples.
// n <= 0 cuts over immediately. Switching during a fade drops the older
// outgoing streamer.
func (c *Crossfader) Switch(next beep.Streamer, n int) {
	if n <= 0 {
		c.current = next
		c.previous = nil
		c.fadeLen, c.fadePos = 0, 0
		return
	}
	c.previous = c.current
	c.current = next
	c.fadeLen = n
	c.fadePos = 0
}

// Fading reports whether a crossfade is in progress.
func (c *Crossfader) Fading() bool {
	return c.fadeLen > 0 && c.fadePos < c.fadeLen
}

// Stream mixes the incoming and outgoing streamers. It never drains, so it
// can stay on the speaker for the lifetime of the program.
func (c *Crossfader) Stream(samples [][2]float64) (n int, ok bool) {
	clear(samples)
	if cap(c.buf) < len(samples) {
		c.buf = make([][2]float64, len(samples))
	}
	buf := c.buf[:len(samples)]

	fadeStart, fading := c.fadePos, c.Fading()

	if c.current != nil {
		m := fill(c.current, buf)
		for i := range m {
			g := 1.0
			if fading {
				g = min(1, float64(fadeStart+i)/float64(c.fadeLen))
			}
			samples[i][0] += buf[i][0] * g
			samples[i][1] += buf[i][1] * g
		}
	}

	if fading && c.previous != nil {
		m := fill(c.previous, buf)
		for i := range m {
			g := max(0, 1-float64(fadeStart+i)/float64(c.fadeLen))
			samples[i][0] += buf[i][0] * g
			samples[i][1] += buf[i][1] * g
		}
	}

	if fading {
		c.fadePos += len(samples)
		if c.fadePos >= c.fadeLen {
			c.previous = nil
			c.fadeLen, c.fadePos = 0, 0
		}
	}
	return len(samples), true
}

// Err always returns nil; errors of the wrapped streamers end their playback.
func (c *Crossfader) Err() error { return nil }

// fill streams into buf and zeroes whatever the streamer did not produce.
func fill(s beep.Streamer, buf [][2]float64) int {
	n, _ := s.Stream(buf)
	n = max(n, 0)
	clear(buf[n:])
	return len(buf)
}

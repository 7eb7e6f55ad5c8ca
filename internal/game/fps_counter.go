package game

import "time"

// fpsCounter counts frames over one-second windows.
type fpsCounter struct {
	start  time.Time
	frames int
	rate   int
	ready  bool
}

// Frame records a frame presented at now.
func (c *fpsCounter) Frame(now time.Time) {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	if elapsed := now.Sub(c.start); elapsed >= time.Second {
		c.rate = int(float64(c.frames) / elapsed.Seconds())
		c.ready = true
		c.frames = 0
		c.start = now
	}
}

// Rate returns the last full window's frame rate; ok is false until one
// window has passed.
func (c *fpsCounter) Rate() (fps int, ok bool) {
	return c.rate, c.ready
}

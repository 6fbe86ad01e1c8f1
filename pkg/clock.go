package pkg

import (
	"fmt"
	"sync"
	"time"
)

// Clock paces frames. Each frame it reports the time elapsed since the
// previous one, or zero while paused.
type Clock struct {
	Interval time.Duration
	Paused   bool

	last time.Time
	now  func() time.Time

	*sync.Mutex
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{
		Interval: interval,
		last:     time.Now(),
		now:      time.Now,
		Mutex:    new(sync.Mutex),
	}
}

func (cl *Clock) String() string {
	state := "running"
	if cl.Paused {
		state = "paused"
	}
	return fmt.Sprintf("%s/frame %s", cl.Interval, state)
}

// Delta returns the time since the last call.
func (cl *Clock) Delta() time.Duration {
	cl.Lock()
	defer cl.Unlock()

	now := cl.now()
	dt := now.Sub(cl.last)
	cl.last = now

	if cl.Paused {
		return 0
	}
	return dt
}

func (cl *Clock) Pause() {
	cl.Lock()
	defer cl.Unlock()

	cl.Paused = true
}

func (cl *Clock) Resume() {
	cl.Lock()
	defer cl.Unlock()

	cl.Paused = false
	cl.last = cl.now()
}

// Toggle pauses a running clock or resumes a paused one and reports whether
// it is now paused.
func (cl *Clock) Toggle() bool {
	cl.Lock()
	defer cl.Unlock()

	cl.Paused = !cl.Paused
	if !cl.Paused {
		cl.last = cl.now()
	}
	return cl.Paused
}

func (cl *Clock) IsPaused() bool {
	cl.Lock()
	defer cl.Unlock()

	return cl.Paused
}

// Run calls frame with the elapsed time once every interval until done is
// closed.
func (cl *Clock) Run(done <-chan struct{}, frame func(dt time.Duration)) {
	tick := time.NewTicker(cl.Interval)
	defer tick.Stop()

	for {
		select {
		case <-done:
			return
		case <-tick.C:
			frame(cl.Delta())
		}
	}
}

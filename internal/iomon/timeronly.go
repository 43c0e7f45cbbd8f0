package iomon

import "time"

// TimerOnlyBackend is the degenerate backend for platforms with neither
// select nor poll: Await just sleeps for the timeout and always reports
// not-ready, so the reactor falls back to pure timer scheduling.
type TimerOnlyBackend struct{}

// NewTimerOnly creates a timer-only monitor.
func NewTimerOnly() *TimerOnlyBackend { return &TimerOnlyBackend{} }

func (t *TimerOnlyBackend) Prepare() {}

func (t *TimerOnlyBackend) Initialize(fd int, interest Interest) Slot { return -1 }

func (t *TimerOnlyBackend) Await(timeoutMS int) (bool, error) {
	if timeoutMS > 0 {
		time.Sleep(time.Duration(timeoutMS) * time.Millisecond)
	}
	return false, nil
}

func (t *TimerOnlyBackend) Test(slot Slot) bool { return false }

package reactor

import (
	"container/heap"
	"time"

	"github.com/garaekz/brld/internal/clock"
)

func heapPush(h *alarmHeap, a *Alarm) { heap.Push(h, a) }
func heapPop(h *alarmHeap) *Alarm     { return heap.Pop(h).(*Alarm) }

// Alarm is a handle to a relative-alarm registration. Cancel removes it
// before it fires.
type Alarm struct {
	deadline clock.Time
	interval time.Duration
	callback func() bool
	canceled bool
	index    int
}

// Cancel removes the alarm if it has not already fired.
func (a *Alarm) Cancel() {
	a.canceled = true
}

type alarmHeap []*Alarm

func (h alarmHeap) Len() int { return len(h) }
func (h alarmHeap) Less(i, j int) bool { return h[i].deadline.Before(h[j].deadline) }
func (h alarmHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *alarmHeap) Push(x any) {
	a := x.(*Alarm)
	a.index = len(*h)
	*h = append(*h, a)
}
func (h *alarmHeap) Pop() any {
	old := *h
	n := len(old)
	a := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return a
}

// NewRelativeAlarm arms callback to run ms milliseconds from now. Returning
// true from callback re-arms the alarm for another ms; returning false (or
// calling Cancel beforehand) stops it. Mirrors asyncNewRelativeAlarm, with
// the re-arm decision folded into the callback's return value the way the
// monitor callbacks of §4.4 decide whether to stay armed.
func (r *Reactor) NewRelativeAlarm(ms int, callback func() bool) *Alarm {
	a := &Alarm{
		deadline: clock.Now().Add(time.Duration(ms) * time.Millisecond),
		interval: time.Duration(ms) * time.Millisecond,
		callback: callback,
	}
	r.pushAlarm(a)
	return a
}

func (r *Reactor) pushAlarm(a *Alarm) {
	heapPush(&r.alarms, a)
}

// fireDueAlarm pops and runs at most one alarm whose deadline has passed,
// re-arming it if its callback asks to. Returns whether an alarm fired,
// counting as the one operation handled this tick.
func (r *Reactor) fireDueAlarm() bool {
	for r.alarms.Len() > 0 {
		top := r.alarms[0]
		if top.canceled {
			heapPop(&r.alarms)
			continue
		}
		if top.deadline.After(clock.Now()) {
			return false
		}
		heapPop(&r.alarms)
		if top.callback != nil && top.callback() && !top.canceled {
			top.deadline = clock.Now().Add(top.interval)
			r.pushAlarm(top)
		}
		return true
	}
	return false
}

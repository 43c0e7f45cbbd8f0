package reactor

// postedItem is one cross-thread request waiting to be processed on the
// reactor goroutine: either a one-shot task or a signaled event payload.
type postedItem struct {
	callback func(payload any)
	payload  any
	done     chan struct{}
}

// Event is a long-lived, reactor-owned callback that other goroutines can
// fire by calling Signal. Mirrors asyncNewEvent/asyncSignalEvent.
type Event struct {
	r        *Reactor
	callback func(payload any)
}

// NewEvent registers callback as the target of future Signal calls.
// callback always runs on the reactor goroutine.
func (r *Reactor) NewEvent(callback func(payload any)) *Event {
	r.nextEventID++
	return &Event{r: r, callback: callback}
}

// Signal posts payload to e's callback and wakes the reactor. Safe to call
// from any goroutine, including the reactor's own.
func (e *Event) Signal(payload any) {
	e.r.post(postedItem{callback: e.callback, payload: payload})
}

func (r *Reactor) post(item postedItem) {
	r.postMu.Lock()
	r.posted = append(r.posted, item)
	r.postMu.Unlock()
	r.wakeW.signal()
}

// takePosted pops at most one posted item, preserving "at most one
// operation handled per tick" fairness for cross-thread work same as for
// fd-driven operations.
func (r *Reactor) takePosted() (postedItem, bool) {
	r.postMu.Lock()
	defer r.postMu.Unlock()
	if len(r.posted) == 0 {
		return postedItem{}, false
	}
	item := r.posted[0]
	r.posted = r.posted[1:]
	return item, true
}

// AddTask schedules callback to run once on the reactor goroutine with
// data, without blocking the caller. Mirrors asyncAddTask.
func (r *Reactor) AddTask(callback func(data any), data any) {
	r.post(postedItem{callback: callback, payload: data})
}

// RunCoreTask schedules callback on the reactor goroutine and blocks the
// caller until it has run, turning the call into a cooperative RPC from
// outside the reactor thread (mirrors the poster optionally blocking on
// the task bundle's done event, per §4.5).
func (r *Reactor) RunCoreTask(callback func(data any), data any) {
	done := make(chan struct{})
	r.post(postedItem{
		callback: func(payload any) {
			callback(payload)
			close(done)
		},
		payload: data,
	})
	<-done
}

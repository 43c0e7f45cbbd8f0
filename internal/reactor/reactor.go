package reactor

import (
	"container/heap"
	"sync"

	"github.com/garaekz/brld/internal/aqueue"
	"github.com/garaekz/brld/internal/clock"
	"github.com/garaekz/brld/internal/iomon"
)

// Reactor is the single-threaded cooperative core. Its function queue,
// descriptor map and alarm heap are touched only from the goroutine
// running Run/HandleOperation; the two cross-thread surfaces, AddTask and
// the Event returned by NewEvent, hand work off through postMu/posted and
// the wake pipe.
type Reactor struct {
	backend   iomon.Backend
	functions *aqueue.Queue[*FunctionEntry]
	byFD      map[int]*aqueue.Element[*FunctionEntry]
	alarms    alarmHeap

	postMu sync.Mutex
	posted []postedItem
	wakeR  *wakeSource
	wakeW  wakeSink

	nextEventID int
	terminating bool
	stopOnce    sync.Once
}

// wakeSource/wakeSink are the minimal surface the reactor needs from its
// cross-thread wake primitive; see wake.go for the self-pipe implementation.
type wakeSource interface {
	fd() int
	drain()
}

type wakeSink interface {
	signal()
	close()
}

// New creates a reactor using backend for I/O readiness. Pass iomon.NewPoll()
// for production use, iomon.NewTimerOnly() on platforms without poll/select.
func New(backend iomon.Backend) *Reactor {
	r := &Reactor{
		backend:   backend,
		functions: aqueue.New[*FunctionEntry](nil, nil),
		byFD:      make(map[int]*aqueue.Element[*FunctionEntry]),
	}
	heap.Init(&r.alarms)
	w := newPipeWake()
	r.wakeR = w
	r.wakeW = w
	r.registerWakeMonitor()
	return r
}

func (r *Reactor) registerWakeMonitor() {
	f := r.functionFor(r.wakeR.fd())
	op := &Operation{fn: f, ext: &wakeExtension{r: r}}
	op.elem = f.ops.Enqueue(op)
}

// wakeExtension is a pure readiness monitor on the self-pipe's read end; it
// never cancels, and its callback drains the pipe and then runs at most
// one posted item.
type wakeExtension struct{ r *Reactor }

func (w *wakeExtension) Start(op *Operation)  {}
func (w *wakeExtension) Finish(op *Operation) { op.markFinished(nil) }
func (w *wakeExtension) Invoke(op *Operation) bool {
	w.r.wakeR.drain()
	if item, ok := w.r.takePosted(); ok {
		item.callback(item.payload)
		if item.done != nil {
			close(item.done)
		}
	}
	return true
}
func (w *wakeExtension) Cancel(op *Operation)      {}
func (w *wakeExtension) MonitorStyle() bool        { return true }
func (w *wakeExtension) Interest() iomon.Interest  { return iomon.InterestRead }

func (r *Reactor) functionFor(fd int) *FunctionEntry {
	if elem, ok := r.byFD[fd]; ok {
		return elem.Value()
	}
	f := &FunctionEntry{fd: fd, ops: aqueue.New[*Operation](nil, nil)}
	f.elem = r.functions.Enqueue(f)
	r.byFD[fd] = f.elem
	return f
}

func (r *Reactor) enqueueOperation(fd int, ext Extension) *Operation {
	f := r.functionFor(fd)
	op := &Operation{fn: f, ext: ext}
	op.elem = f.ops.Enqueue(op)
	if f.ops.Head() == op.elem || ext.MonitorStyle() {
		ext.Start(op)
	}
	return op
}

func (r *Reactor) cancelOperation(op *Operation) {
	if op == nil || op.cancel {
		return
	}
	if op.active {
		op.cancel = true
		return
	}
	op.ext.Cancel(op)
	f := op.fn
	f.ops.DeleteElement(op.elem)
	if f.ops.Len() == 0 {
		delete(r.byFD, f.fd)
		r.functions.DeleteElement(f.elem)
	}
}

// nextAlarmDeadline returns the earliest armed alarm's deadline and true,
// or the zero Time and false if none are armed.
func (r *Reactor) nextAlarmDeadline() (clock.Time, bool) {
	if r.alarms.Len() == 0 {
		return clock.Time{}, false
	}
	return r.alarms[0].deadline, true
}

func clampTimeout(ms int) int {
	if ms < 0 {
		return ms
	}
	if ms > 24*60*60*1000 {
		return 24 * 60 * 60 * 1000
	}
	return ms
}

// HandleOperation runs one reactor tick: compute the next deadline, wait
// for an event or timeout, dispatch at most one ready operation. Mirrors
// asyncHandleOperation(timeout_ms) → handled_bool.
func (r *Reactor) HandleOperation(timeoutMS int) bool {
	if fired := r.fireDueAlarm(); fired {
		return true
	}

	wait := timeoutMS
	if deadline, ok := r.nextAlarmDeadline(); ok {
		ms := clock.MillisecondsUntil(deadline, clock.Now())
		if timeoutMS < 0 || ms < timeoutMS {
			wait = ms
		}
	}

	if r.functions.Len() == 0 {
		if wait > 0 {
			sleepMS(wait)
		}
		return r.fireDueAlarm()
	}

	r.backend.Prepare()

	// Short-circuit: a function whose active operation is already
	// finished (but not active) dispatches immediately without consulting
	// OS readiness. This preserves the source's "fewest syscalls"
	// behavior for the open question in §9 rather than the fairer
	// always-enumerate alternative; see DESIGN.md.
	short := r.functions.ProcessQueue(func(f *FunctionEntry) bool {
		ae := f.activeElement()
		if ae == nil {
			return false
		}
		op := ae.Value()
		if op.finished && !op.active {
			return true
		}
		f.monSlot = r.backend.Initialize(f.fd, ae.Value().ext.Interest())
		f.hasSlot = true
		return false
	})

	var target *FunctionEntry
	if short != nil {
		target = short.Value()
	} else {
		ready, err := r.backend.Await(clampTimeout(wait))
		if err != nil || !ready {
			if r.fireDueAlarm() {
				return true
			}
			return false
		}
		found := r.functions.ProcessQueue(func(f *FunctionEntry) bool {
			if !f.hasSlot {
				return false
			}
			return r.backend.Test(f.monSlot)
		})
		if found == nil {
			return r.fireDueAlarm()
		}
		target = found.Value()
	}

	return r.dispatch(target)
}

func (r *Reactor) dispatch(f *FunctionEntry) bool {
	ae := f.activeElement()
	if ae == nil {
		return false
	}
	op := ae.Value()

	if !op.finished {
		op.ext.Finish(op)
	}

	op.active = true
	keep := op.ext.Invoke(op)
	if !keep {
		op.cancel = true
	}
	op.active = false

	if op.cancel {
		f.ops.DeleteElement(op.elem)
	} else {
		op.resetForRestart()
	}

	if ae2 := f.activeElement(); ae2 != nil {
		ae2.Value().ext.Start(ae2.Value())
		r.functions.RequeueElement(f.elem)
	} else {
		delete(r.byFD, f.fd)
		r.functions.DeleteElement(f.elem)
	}

	return true
}

// Run drives HandleOperation in a loop until Stop is called.
func (r *Reactor) Run() {
	for !r.terminating {
		r.HandleOperation(1000)
	}
}

// Stop requests the reactor loop in Run to exit after the current tick.
func (r *Reactor) Stop() {
	r.stopOnce.Do(func() {
		r.terminating = true
	})
	r.SignalWake()
}

// SignalWake wakes a blocked Await immediately without posting any work;
// used by Stop and by anything that needs the loop to reconsider state.
func (r *Reactor) SignalWake() {
	r.wakeW.signal()
}

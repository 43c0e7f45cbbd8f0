// Package reactor implements the single-threaded cooperative event core:
// one FunctionEntry per watched file descriptor, a FIFO queue of pending
// Operations against it, and a Reactor that dispatches exactly one
// operation per tick, chosen by a four-call iomon.Backend.
package reactor

import (
	"github.com/garaekz/brld/internal/aqueue"
	"github.com/garaekz/brld/internal/iomon"
)

// Extension is the kind-specific behavior of one Operation: a transfer
// (read/write) or a bare readiness monitor. It plays the role of the
// source's FunctionMethods vtable (startOperation/finishOperation/
// invokeCallback/cancelOperation), but scoped to the operation rather than
// the function, since in this rendering every operation owns its own
// extension value instead of sharing one per-function vtable pointer.
type Extension interface {
	// Start attempts the kind's nonblocking step and records the outcome
	// on op (via op.markFinished). Called when op becomes the
	// active operation for its function, including on every restart.
	Start(op *Operation)

	// Finish is invoked by the reactor immediately before dispatch if op is
	// not already finished; for transfer kinds this performs the actual
	// read/write. For monitor kinds there is nothing to transfer, so
	// Finish only marks op finished.
	Finish(op *Operation)

	// Invoke runs the user callback. Returning false cancels the
	// operation; returning true restarts it (Start runs again).
	Invoke(op *Operation) bool

	// Cancel runs kind-specific cleanup when op is removed from its queue.
	Cancel(op *Operation)

	// MonitorStyle reports whether this operation's active-operation
	// selection uses the function's queue tail ("latest registration
	// wins") rather than the head. True for bare readiness monitors,
	// false for transfer (read/write) operations.
	MonitorStyle() bool

	// Interest returns the I/O readiness this extension needs monitored.
	Interest() iomon.Interest
}

// Operation is one pending async action against a FunctionEntry.
type Operation struct {
	fn       *FunctionEntry
	ext      Extension
	elem     *aqueue.Element[*Operation]
	err      error
	active   bool
	cancel   bool
	finished bool
}

// Err returns the last recorded error for this operation, if any.
func (o *Operation) Err() error { return o.err }

// FD returns the file descriptor this operation's function watches.
func (o *Operation) FD() int { return o.fn.fd }

func (o *Operation) markFinished(err error) {
	o.finished = true
	o.err = err
}

func (o *Operation) resetForRestart() {
	o.finished = false
	o.err = nil
}

// handle is the Cancel-able registration token returned to callers of the
// public async surface (see public.go).
type handle struct {
	op *Operation
	r  *Reactor
}

// Cancel requests removal of the underlying operation. Safe to call more
// than once. It acts on the reactor's queues directly rather than through
// the posted-task list, so it belongs on the reactor's own goroutine (the
// common case, from inside a callback); unlike AddTask/SignalEvent it is
// not a cross-thread surface.
func (h *handle) Cancel() {
	if h == nil || h.op == nil {
		return
	}
	h.r.cancelOperation(h.op)
}

// FunctionEntry aggregates all pending operations against one descriptor.
// Created on the first operation for fd, destroyed when the last operation
// against it is deleted.
type FunctionEntry struct {
	fd       int
	ops      *aqueue.Queue[*Operation]
	elem     *aqueue.Element[*FunctionEntry]
	monSlot  iomon.Slot
	hasSlot  bool
}

// FD returns the watched descriptor.
func (f *FunctionEntry) FD() int { return f.fd }

// activeElement returns the element holding this function's active
// operation: the tail for monitor-style extensions ("latest registration
// wins"), the head otherwise (FIFO transfer ordering).
func (f *FunctionEntry) activeElement() *aqueue.Element[*Operation] {
	if f.ops.Len() == 0 {
		return nil
	}
	head := f.ops.Head()
	if head.Value().ext.MonitorStyle() {
		return f.ops.Tail()
	}
	return head
}

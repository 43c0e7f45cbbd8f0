package reactor

import (
	"io"
	"syscall"

	"github.com/garaekz/brld/internal/iomon"
)

// InputCallback receives the accumulated buffer and returns how many bytes
// it consumed from the front; the residue is retained for the next
// invocation. end is true at EOF.
type InputCallback func(buffer []byte, err error, end bool) (consumed int)

// OutputCallback is invoked once, at completion of a write.
type OutputCallback func(err error)

// inputExtension implements the "Input" transfer kind of §4.4: accumulate
// into buffer[:length] until full, EOF, or error; invariant
// 0 ≤ length ≤ size is maintained by construction.
type inputExtension struct {
	read     func(p []byte) (int, error)
	buffer   []byte
	length   int
	callback InputCallback
	end      bool
}

func newInput(read func([]byte) (int, error), size int, cb InputCallback) *inputExtension {
	return &inputExtension{read: read, buffer: make([]byte, size), callback: cb}
}

// Start reads nothing: the read happens in Finish once the backend has
// reported the descriptor readable, since a read on an empty descriptor
// would block the tick. A buffer that is already full finishes at once.
func (e *inputExtension) Start(op *Operation) {
	if e.length >= len(e.buffer) {
		op.markFinished(nil)
	}
}
func (e *inputExtension) MonitorStyle() bool   { return false }
func (e *inputExtension) Interest() iomon.Interest { return iomon.InterestRead }

func (e *inputExtension) Finish(op *Operation) {
	if e.length >= len(e.buffer) {
		op.markFinished(nil)
		return
	}
	n, err := e.read(e.buffer[e.length:])
	switch {
	case n < 0:
		op.markFinished(err)
	case err == io.EOF || (n == 0 && err == nil):
		e.end = true
		op.markFinished(nil)
	case err != nil:
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			return
		}
		op.markFinished(err)
	default:
		e.length += n
		op.markFinished(nil)
	}
}

func (e *inputExtension) Invoke(op *Operation) bool {
	if e.callback == nil {
		return false
	}
	consumed := e.callback(e.buffer[:e.length], op.err, e.end)
	if consumed < 0 {
		consumed = 0
	}
	if consumed > e.length {
		consumed = e.length
	}
	remaining := e.length - consumed
	if consumed > 0 && remaining > 0 {
		copy(e.buffer, e.buffer[consumed:e.length])
	}
	e.length = remaining
	if e.end && remaining == 0 {
		return false
	}
	return true
}

func (e *inputExtension) Cancel(op *Operation) {}

// outputExtension implements the "Output" transfer kind: write
// buffer[length:] until fully written or errored, invoke once, then
// self-cancel.
type outputExtension struct {
	write    func(p []byte) (int, error)
	buffer   []byte
	length   int
	callback OutputCallback
}

func newOutput(write func([]byte) (int, error), buffer []byte, cb OutputCallback) *outputExtension {
	return &outputExtension{write: write, buffer: buffer, callback: cb}
}

func (e *outputExtension) Start(op *Operation)  { e.Finish(op) }
func (e *outputExtension) MonitorStyle() bool   { return false }
func (e *outputExtension) Interest() iomon.Interest { return iomon.InterestWrite }

func (e *outputExtension) Finish(op *Operation) {
	if e.length >= len(e.buffer) {
		op.markFinished(nil)
		return
	}
	n, err := e.write(e.buffer[e.length:])
	if n > 0 {
		e.length += n
	}
	switch {
	case err == syscall.EAGAIN || err == syscall.EWOULDBLOCK:
		return
	case err != nil:
		op.markFinished(err)
	case e.length >= len(e.buffer):
		op.markFinished(nil)
	}
}

func (e *outputExtension) Invoke(op *Operation) bool {
	if e.callback != nil {
		e.callback(op.err)
	}
	return false
}

func (e *outputExtension) Cancel(op *Operation) {}

// monitorExtension is a bare readiness signal with no transfer: the
// callback returns true to stay armed, false to cancel. Uses tail
// selection ("latest registration wins") per §4.3.
type monitorExtension struct {
	interest iomon.Interest
	callback func() bool
}

func (e *monitorExtension) Start(op *Operation)      {}
func (e *monitorExtension) Finish(op *Operation)     { op.markFinished(nil) }
func (e *monitorExtension) MonitorStyle() bool       { return true }
func (e *monitorExtension) Interest() iomon.Interest { return e.interest }
func (e *monitorExtension) Cancel(op *Operation)     {}
func (e *monitorExtension) Invoke(op *Operation) bool {
	if e.callback == nil {
		return false
	}
	return e.callback()
}

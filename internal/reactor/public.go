package reactor

import (
	"os"

	"github.com/garaekz/brld/internal/iomon"
)

// Handle cancels an outstanding async registration. Returned by every
// AsyncXxx constructor below. Mirrors asyncCancelRequest.
type Handle interface {
	Cancel()
}

// AsyncReadFile arms a buffered input operation on f, invoking callback as
// data accumulates or at EOF/error. size bounds the internal buffer.
func (r *Reactor) AsyncReadFile(f *os.File, size int, callback InputCallback) Handle {
	ext := newInput(f.Read, size, callback)
	op := r.enqueueOperation(int(f.Fd()), ext)
	return &handle{op: op, r: r}
}

// AsyncWriteFile arms a write of buffer on f; callback runs once at
// completion.
func (r *Reactor) AsyncWriteFile(f *os.File, buffer []byte, callback OutputCallback) Handle {
	ext := newOutput(f.Write, buffer, callback)
	op := r.enqueueOperation(int(f.Fd()), ext)
	return &handle{op: op, r: r}
}

// AsyncMonitorFileInput arms a bare readiness monitor for read interest on
// f; callback returns true to stay armed.
func (r *Reactor) AsyncMonitorFileInput(f *os.File, callback func() bool) Handle {
	return r.monitor(int(f.Fd()), iomon.InterestRead, callback)
}

// AsyncMonitorFileOutput arms a bare readiness monitor for write interest.
func (r *Reactor) AsyncMonitorFileOutput(f *os.File, callback func() bool) Handle {
	return r.monitor(int(f.Fd()), iomon.InterestWrite, callback)
}

// AsyncMonitorFileAlert arms a bare readiness monitor for exceptional
// conditions (out-of-band data, hangup).
func (r *Reactor) AsyncMonitorFileAlert(f *os.File, callback func() bool) Handle {
	return r.monitor(int(f.Fd()), iomon.InterestException, callback)
}

func (r *Reactor) monitor(fd int, interest iomon.Interest, callback func() bool) Handle {
	ext := &monitorExtension{interest: interest, callback: callback}
	op := r.enqueueOperation(fd, ext)
	return &handle{op: op, r: r}
}

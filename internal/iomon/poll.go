package iomon

import (
	"golang.org/x/sys/unix"
)

// PollBackend implements Backend atop poll(2) via golang.org/x/sys/unix,
// mirroring the source's HAVE_SYS_POLL_H path: one pollfd per registered
// function entry, revents tested against the caller's interest mask.
type PollBackend struct {
	fds []unix.PollFd
}

// NewPoll creates a poll(2)-backed monitor.
func NewPoll() *PollBackend {
	return &PollBackend{}
}

func toPollEvents(i Interest) int16 {
	var ev int16
	if i&InterestRead != 0 {
		ev |= unix.POLLIN
	}
	if i&InterestWrite != 0 {
		ev |= unix.POLLOUT
	}
	if i&InterestException != 0 {
		ev |= unix.POLLPRI
	}
	return ev
}

func (p *PollBackend) Prepare() {
	p.fds = p.fds[:0]
}

func (p *PollBackend) Initialize(fd int, interest Interest) Slot {
	p.fds = append(p.fds, unix.PollFd{Fd: int32(fd), Events: toPollEvents(interest)})
	return Slot(len(p.fds) - 1)
}

func (p *PollBackend) Await(timeoutMS int) (bool, error) {
	if len(p.fds) == 0 {
		return false, nil
	}
	n, err := unix.Poll(p.fds, timeoutMS)
	if err == unix.EINTR {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (p *PollBackend) Test(slot Slot) bool {
	if int(slot) < 0 || int(slot) >= len(p.fds) {
		return false
	}
	return p.fds[slot].Revents&(unix.POLLIN|unix.POLLOUT|unix.POLLPRI|unix.POLLHUP|unix.POLLERR) != 0
}

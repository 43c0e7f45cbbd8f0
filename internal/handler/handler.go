// Package handler implements the command handler stack of spec §4.8: a
// stack of context-sensitive handler lists, dispatch to the innermost
// handler that claims a command, and pre/post hooks around execution.
package handler

import "github.com/garaekz/brld/internal/alert"

// Code is an opaque command code. Concrete command codes belong to the
// driver layer (§6); the handler stack only needs to compare and carry
// them.
type Code int

// Flags annotate a command with cross-cutting behavior the post-hook must
// react to.
type Flags uint32

// MotionRoute marks a command whose post-hook should initiate cursor
// routing if it left the screen cursor outside the braille window.
const MotionRoute Flags = 1 << 0

// Handler claims or passes on a command. Returning true stops the search.
type Handler func(cmd Code, flags Flags, data any) (handled bool)

type handlerEntry struct {
	name    string
	context string
	fn      Handler
	data    any
}

// PreHook snapshots whatever state the post-hook needs to detect motion;
// the snapshot is opaque to the stack itself.
type PreHook func() any

// PostHook runs after dispatch with the pre-hook's snapshot, the command,
// and whether it was handled.
type PostHook func(state any, cmd Code, flags Flags, handled bool)

// Environment is one pushed frame: a name, pre/post hooks, and its own
// handler list.
type Environment struct {
	name     string
	pre      PreHook
	post     PostHook
	handlers []*handlerEntry
}

// Stack is the full command handler stack. The zero value is ready to use.
type Stack struct {
	envs        []*Environment
	alertSink   alert.Sink
}

// NewStack returns an empty stack that plays rejection alerts through
// sink (may be nil to suppress alerts, e.g. in tests).
func NewStack(sink alert.Sink) *Stack {
	return &Stack{alertSink: sink}
}

// PushEnvironment records a new innermost frame.
func (s *Stack) PushEnvironment(name string, pre PreHook, post PostHook) {
	s.envs = append(s.envs, &Environment{name: name, pre: pre, post: post})
}

// PopEnvironment removes the innermost frame. No-op if the stack is empty.
func (s *Stack) PopEnvironment() {
	if len(s.envs) == 0 {
		return
	}
	s.envs = s.envs[:len(s.envs)-1]
}

// Depth reports how many environments are currently pushed.
func (s *Stack) Depth() int { return len(s.envs) }

// PushHandler adds a handler to the current (innermost) environment. It is
// a no-op if no environment is pushed.
func (s *Stack) PushHandler(name, context string, fn Handler, data any) {
	if len(s.envs) == 0 {
		return
	}
	env := s.envs[len(s.envs)-1]
	env.handlers = append(env.handlers, &handlerEntry{name: name, context: context, fn: fn, data: data})
}

// PopHandler removes the most recently pushed handler from the current
// environment. No-op if that environment has no handlers.
func (s *Stack) PopHandler() {
	if len(s.envs) == 0 {
		return
	}
	env := s.envs[len(s.envs)-1]
	if len(env.handlers) == 0 {
		return
	}
	env.handlers = env.handlers[:len(env.handlers)-1]
}

// Dispatch runs the pre-hook, walks handlers of the innermost environment
// in reverse push order until one claims the command, then runs the
// post-hook. Returns whether any handler claimed it.
func (s *Stack) Dispatch(cmd Code, flags Flags, data any) bool {
	if len(s.envs) == 0 {
		return false
	}
	env := s.envs[len(s.envs)-1]

	var state any
	if env.pre != nil {
		state = env.pre()
	}

	handled := false
	for i := len(env.handlers) - 1; i >= 0; i-- {
		if env.handlers[i].fn(cmd, flags, data) {
			handled = true
			break
		}
	}

	if !handled {
		alert.Play(s.alertSink, alert.CommandRejected)
	}

	if env.post != nil {
		env.post(state, cmd, flags, handled)
	}
	return handled
}

package taskflow

import (
	"errors"
	"fmt"
)

// Common flow execution errors
var (
	// ErrCanceled indicates the flow was canceled by context
	ErrCanceled = errors.New("flow execution canceled")

	// ErrTimeout indicates the flow exceeded its timeout
	ErrTimeout = errors.New("flow execution timeout")

	// ErrRetryExhausted indicates all retry attempts have been used
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrEmptyFlow indicates an attempt to run an empty flow
	ErrEmptyFlow = errors.New("cannot run empty flow")
)

// FlowError represents an error that occurred during flow execution.
// It includes context about where in the flow the error occurred.
type FlowError struct {
	Flow    string // Name or type of the flow
	Step    string // Name or identifier of the step
	Err     error  // The underlying error
	Attempt int    // Which retry attempt failed (0 for first attempt)
}

// Error implements the error interface.
func (e *FlowError) Error() string {
	if e.Step != "" {
		if e.Attempt > 0 {
			return fmt.Sprintf("flow %s, step %s (attempt %d): %v", e.Flow, e.Step, e.Attempt+1, e.Err)
		}
		return fmt.Sprintf("flow %s, step %s: %v", e.Flow, e.Step, e.Err)
	}
	return fmt.Sprintf("flow %s: %v", e.Flow, e.Err)
}

// Unwrap returns the underlying error.
func (e *FlowError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error.
func (e *FlowError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewFlowError creates a new FlowError.
func NewFlowError(flow, step string, err error) *FlowError {
	return &FlowError{
		Flow: flow,
		Step: step,
		Err:  err,
	}
}

// NewFlowErrorWithAttempt creates a new FlowError with retry attempt information.
func NewFlowErrorWithAttempt(flow, step string, err error, attempt int) *FlowError {
	return &FlowError{
		Flow:    flow,
		Step:    step,
		Err:     err,
		Attempt: attempt,
	}
}

package taskflow

import (
	"context"
	"fmt"

	"github.com/garaekz/brld/internal/share"
)

// Sequence represents a sequential flow that executes steps one after another.
// If any step fails, the sequence stops and returns the error.
type Sequence struct {
	steps      []Step
	name       string
	onStart    Hook
	onComplete Hook
	onError    Hook
}

// SequenceConfig provides configuration for a Sequence.
type SequenceConfig struct {
	Name       string
	OnStart    Hook
	OnComplete Hook
	OnError    Hook
}

// DefaultSequenceConfig returns the default configuration for a Sequence.
func DefaultSequenceConfig() SequenceConfig {
	return SequenceConfig{
		Name: "sequence",
	}
}

// newSequence creates a new sequence with the given configuration.
func newSequence(cfg SequenceConfig) *Sequence {
	return &Sequence{
		steps:      make([]Step, 0),
		name:       cfg.Name,
		onStart:    cfg.OnStart,
		onComplete: cfg.OnComplete,
		onError:    cfg.OnError,
	}
}

// NewSequence creates a new sequential flow. Supports two usage patterns:
//   - NewSequence()       // zero-config, uses defaults
//   - NewSequence(config) // config struct
func NewSequence(args ...any) *Sequence {
	cfg := share.Overload(args, DefaultSequenceConfig())
	return newSequence(cfg)
}

// Add appends a step to the sequence.
func (s *Sequence) Add(step Step) *Sequence {
	s.steps = append(s.steps, step)
	return s
}

// AddTask is a convenience method to add a Task as a step.
func (s *Sequence) AddTask(task *Task) *Sequence {
	s.steps = append(s.steps, task)
	return s
}

// AddFunc is a convenience method to add a function as a step.
func (s *Sequence) AddFunc(label string, fn func(ctx context.Context) error) *Sequence {
	task := NewTask(label, fn)
	s.steps = append(s.steps, task)
	return s
}

// Run executes all steps in the sequence sequentially.
// It implements the Flow interface.
func (s *Sequence) Run(ctx context.Context) error {
	if len(s.steps) == 0 {
		return NewFlowError(s.name, "", ErrEmptyFlow)
	}

	// Call onStart hook if provided
	if s.onStart != nil {
		s.onStart(ctx, s.name, nil)
	}

	// Execute each step sequentially
	for i, step := range s.steps {
		// Check for cancellation before each step
		select {
		case <-ctx.Done():
			err := ctx.Err()
			if s.onError != nil {
				s.onError(ctx, s.name, err)
			}
			return NewFlowError(s.name, fmt.Sprintf("step_%d", i+1), err)
		default:
		}

		// Execute the step
		if err := step.Execute(ctx); err != nil {
			if s.onError != nil {
				s.onError(ctx, s.name, err)
			}

			stepName := fmt.Sprintf("step_%d", i+1)
			if task, ok := step.(*Task); ok && task.Label != "" {
				stepName = task.Label
			}

			return NewFlowError(s.name, stepName, err)
		}
	}

	// Call onComplete hook if provided
	if s.onComplete != nil {
		s.onComplete(ctx, s.name, nil)
	}

	return nil
}

// Steps returns a copy of the steps in the sequence.
func (s *Sequence) Steps() []Step {
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)
	return steps
}

// Len returns the number of steps in the sequence.
func (s *Sequence) Len() int {
	return len(s.steps)
}

package taskflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/garaekz/brld/internal/share"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Parallel represents a parallel flow that executes steps concurrently.
// All steps run simultaneously, and the flow waits for all to complete.
type Parallel struct {
	steps      []Step
	name       string
	onStart    Hook
	onComplete Hook
	onError    Hook
	failFast   bool // If true, cancel all steps when one fails
}

// ParallelConfig provides configuration for a Parallel flow.
type ParallelConfig struct {
	Name       string
	OnStart    Hook
	OnComplete Hook
	OnError    Hook
	FailFast   bool
}

// DefaultParallelConfig returns the default configuration for a Parallel flow.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Name:     "parallel",
		FailFast: false,
	}
}

// newParallel creates a new parallel flow with the given configuration.
func newParallel(cfg ParallelConfig) *Parallel {
	return &Parallel{
		steps:      make([]Step, 0),
		name:       cfg.Name,
		onStart:    cfg.OnStart,
		onComplete: cfg.OnComplete,
		onError:    cfg.OnError,
		failFast:   cfg.FailFast,
	}
}

// NewParallel creates a new parallel flow. Supports two usage patterns:
//   - NewParallel()       // zero-config, uses defaults
//   - NewParallel(config) // config struct
func NewParallel(args ...any) *Parallel {
	cfg := share.Overload(args, DefaultParallelConfig())
	return newParallel(cfg)
}

// Add appends a step to the parallel flow.
func (p *Parallel) Add(step Step) *Parallel {
	p.steps = append(p.steps, step)
	return p
}

// AddTask is a convenience method to add a Task as a step.
func (p *Parallel) AddTask(task *Task) *Parallel {
	p.steps = append(p.steps, task)
	return p
}

// AddFunc is a convenience method to add a function as a step.
func (p *Parallel) AddFunc(label string, fn func(ctx context.Context) error) *Parallel {
	task := NewTask(label, fn)
	p.steps = append(p.steps, task)
	return p
}

// Run executes all steps in parallel and waits for completion.
// It implements the Flow interface.
func (p *Parallel) Run(ctx context.Context) error {
	if len(p.steps) == 0 {
		return NewFlowError(p.name, "", ErrEmptyFlow)
	}

	// Call onStart hook if provided
	if p.onStart != nil {
		p.onStart(ctx, p.name, nil)
	}

	// Create context for cancellation in fail-fast mode
	execCtx := ctx
	var cancel context.CancelFunc
	if p.failFast {
		execCtx, cancel = context.WithCancel(ctx)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(execCtx)
	var mu sync.Mutex
	var joined error

	// Start all steps concurrently
	for i, step := range p.steps {
		i, s := i, step
		g.Go(func() error {
			runCtx := execCtx
			if p.failFast {
				runCtx = gctx
			}
			if err := s.Execute(runCtx); err != nil {
				stepName := fmt.Sprintf("step_%d", i+1)
				if task, ok := s.(*Task); ok && task.Label != "" {
					stepName = task.Label
				}

				flowErr := NewFlowError(p.name, stepName, err)
				mu.Lock()
				joined = multierr.Append(joined, flowErr)
				mu.Unlock()

				if p.failFast && cancel != nil {
					cancel()
				}
				return flowErr
			}
			return nil
		})
	}

	// g.Wait returns only the first step error; the joined multierr
	// above holds every step failure.
	_ = g.Wait()

	if joined != nil {
		if p.onError != nil {
			p.onError(ctx, p.name, joined)
		}
		return joined
	}

	// All steps completed successfully
	if p.onComplete != nil {
		p.onComplete(ctx, p.name, nil)
	}

	return nil
}

// Steps returns a copy of the steps in the parallel flow.
func (p *Parallel) Steps() []Step {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// Len returns the number of steps in the parallel flow.
func (p *Parallel) Len() int {
	return len(p.steps)
}

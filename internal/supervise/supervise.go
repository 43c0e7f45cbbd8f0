// Package supervise implements the driver-restart supervisor: close the
// failed driver, probe candidate parameter sets, open the winner, reload
// its key tables. Recovered from core.c's driver construction retry loop
// (spec §7.2, "close, re-probe, re-open, reload key tables").
package supervise

import (
	"context"
	"fmt"

	"github.com/garaekz/brld/internal/display"
	"github.com/garaekz/brld/internal/taskflow"
	"go.uber.org/multierr"
)

// Candidate is one set of driver parameters to try opening the braille
// driver with.
type Candidate struct {
	Label      string
	Parameters map[string]string
}

// Supervisor drives a display.BrailleDriver through a restart cycle when
// BrailleDisplay.HasFailed is set.
type Supervisor struct {
	driver  display.BrailleDriver
	brl     *display.BrailleDisplay
	reload  func() error
	onStep  func(label string, err error)
}

// New builds a Supervisor for driver, acting on brl's failure flag.
// reload reloads the driver's key tables; it may be nil if the driver
// has none.
func New(driver display.BrailleDriver, brl *display.BrailleDisplay, reload func() error) *Supervisor {
	return &Supervisor{driver: driver, brl: brl, reload: reload}
}

// OnStep installs a hook invoked after every sequence step, successful
// or not — useful for logging each stage of a restart attempt.
func (s *Supervisor) OnStep(hook func(label string, err error)) {
	s.onStep = hook
}

// Restart runs close -> probe(candidates) -> open(winner) -> reload as an
// ordered taskflow.Sequence. The sequence stops at the first failing step
// and returns that step's error; when the probe step fails, that error
// joins every candidate's rejection via multierr. On success brl's
// HasFailed flag is cleared; on failure it is set.
func (s *Supervisor) Restart(ctx context.Context, candidates []Candidate) error {
	if len(candidates) == 0 {
		return fmt.Errorf("supervise: no candidates to probe")
	}

	var winner Candidate
	found := false

	seq := taskflow.NewSequence(taskflow.SequenceConfig{
		Name: "driver-restart",
		OnComplete: func(_ context.Context, _ string, _ error) {
			if s.onStep != nil {
				s.onStep("restart", nil)
			}
		},
	})

	seq.AddFunc("close", func(ctx context.Context) error {
		err := s.driver.Close()
		s.report("close", err)
		return err
	})

	seq.AddFunc("probe", func(ctx context.Context) error {
		w, err := s.probe(ctx, candidates)
		s.report("probe", err)
		if err == nil {
			winner = w
			found = true
		}
		return err
	})

	seq.AddFunc("open", func(ctx context.Context) error {
		if !found {
			return fmt.Errorf("supervise: no candidate survived probing")
		}
		err := s.driver.Open(winner.Parameters)
		s.report("open", err)
		return err
	})

	seq.AddFunc("reload", func(ctx context.Context) error {
		if s.reload == nil {
			return nil
		}
		err := s.reload()
		s.report("reload", err)
		return err
	})

	if err := seq.Run(ctx); err != nil {
		s.brl.HasFailed = true
		return err
	}

	s.brl.HasFailed = false
	return nil
}

// probe tries every candidate concurrently via taskflow.Parallel
// (errgroup-backed); the first candidate whose trial Open/Close round
// trip succeeds wins and the rest are left to be canceled by the
// surrounding context. Ties are resolved by candidate order.
func (s *Supervisor) probe(ctx context.Context, candidates []Candidate) (Candidate, error) {
	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]bool, len(candidates))

	par := taskflow.NewParallel(taskflow.ParallelConfig{Name: "driver-probe", FailFast: true})
	for i, c := range candidates {
		i, c := i, c
		par.AddFunc(c.Label, func(ctx context.Context) error {
			if err := s.driver.Open(c.Parameters); err != nil {
				return err
			}
			results[i] = true
			_ = s.driver.Close()
			cancel()
			return nil
		})
	}

	// Every candidate's failure is joined: if none wins, the caller sees
	// why each one was rejected instead of only the last.
	joinedFailures := par.Run(probeCtx)

	for i, ok := range results {
		if ok {
			return candidates[i], nil
		}
	}

	return Candidate{}, multierr.Append(
		fmt.Errorf("supervise: all %d candidates failed to open", len(candidates)),
		joinedFailures,
	)
}

func (s *Supervisor) report(label string, err error) {
	if s.onStep != nil {
		s.onStep(label, err)
	}
}

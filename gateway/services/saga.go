package services

import (
	"context"

	"go.uber.org/zap"
)

// compensation is an undo action for one committed forward step of a
// workflow.
type compensation struct {
	name string
	run  func(ctx context.Context) error
}

// compensationStack collects undo actions as forward steps commit. On
// failure the stack unwinds in reverse order: the most recently committed
// step is undone first. The stack lives only for the duration of one
// workflow invocation and is never shared.
type compensationStack struct {
	steps []compensation
}

// push registers an undo action for a step that just committed.
func (s *compensationStack) push(name string, run func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{name: name, run: run})
}

// unwind executes all registered compensations LIFO, best-effort. A
// compensation's own failure is the deepest level of the stack: it is logged
// with a distinct signal so operators can spot dangling payments or stuck
// reservations, and unwinding continues with the remaining steps. The
// workflow's primary error is reported by the caller, not from here.
func (s *compensationStack) unwind(ctx context.Context, logger *zap.Logger) {
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.run(ctx); err != nil {
			logger.Error("compensation failed",
				zap.String("compensation", step.name),
				zap.Error(err),
			)
			continue
		}
		logger.Warn("compensation applied", zap.String("compensation", step.name))
	}
	s.steps = nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
)

// sagaStep is one step of an operation spanning independently-failing
// systems. rollback, when set, reverses the effect of a completed run.
type sagaStep struct {
	name     string
	run      func(ctx context.Context) error
	rollback func(ctx context.Context) error
}

// runSaga executes steps in order. On the first failure it runs the
// rollbacks of the completed steps in reverse order and returns the failed
// step's error. There are no retries: one failed attempt fails the whole
// operation. Rollback failures are logged only, the operation has already
// failed.
func runSaga(ctx context.Context, steps []sagaStep) error {
	for i, step := range steps {
		err := step.run(ctx)
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			if steps[j].rollback == nil {
				continue
			}

			rbErr := steps[j].rollback(ctx)
			if rbErr != nil {
				slog.ErrorContext(ctx, "saga rollback failed", "step", steps[j].name, "error", rbErr)
			}
		}

		return fmt.Errorf("%s: %w", step.name, err)
	}

	return nil
}

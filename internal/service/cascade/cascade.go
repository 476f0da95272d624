// Package cascade runs the post-commit follow-up tasks of a mutation.
//
// Follow-up steps (media sync, ledger reconciliation) run after the
// primary write has committed and are not allowed to fail it: a task
// error is logged and swallowed, never propagated. Each task is
// idempotent and re-runs on the next relevant mutation, so transient
// drift self-heals.
package cascade

import "context"

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Task one named post-commit follow-up step
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes post-commit task lists
type Runner struct {
	logger Logger
}

// NewRunner creates a cascade runner.
func NewRunner(logger Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes every task in order. Failures are logged with the
// operation name and do not stop the remaining tasks.
func (r *Runner) Run(ctx context.Context, operation string, tasks []Task) {
	for _, task := range tasks {
		if err := task.Run(ctx); err != nil {
			r.logger.Error("%s: cascade task %q failed (primary write already committed, will self-heal on next mutation): %v",
				operation, task.Name, err)
		}
	}
}

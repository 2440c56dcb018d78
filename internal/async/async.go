// Package async runs simulated latent work as Bubble Tea commands that can be
// cancelled by the view that started them.
package async

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Done carries the outcome of a task back to the update loop
type Done struct {
	ID    string
	Value any
	Err   error
}

// Task is a handle on one pending piece of work
type Task struct {
	ID     string
	cancel context.CancelFunc
}

// Cancel stops the task; a cancelled task delivers no message. Safe on the
// zero Task.
func (t Task) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

// Pending reports whether the handle refers to a started task
func (t Task) Pending() bool {
	return t.ID != ""
}

// Start returns a command that waits delay, then runs fn and reports a Done.
// If parent or the task is cancelled first, the command yields nil.
func Start(parent context.Context, delay time.Duration, fn func(ctx context.Context) (any, error)) (Task, tea.Cmd) {
	ctx, cancel := context.WithCancel(parent)
	task := Task{ID: uuid.NewString(), cancel: cancel}

	cmd := func() tea.Msg {
		defer cancel()
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		value, err := fn(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return Done{ID: task.ID, Value: value, Err: err}
	}
	return task, cmd
}

// Accept reports whether msg is the result of task. Results of superseded or
// cancelled tasks are rejected.
func Accept(task Task, msg Done) bool {
	return task.Pending() && msg.ID == task.ID
}

// Package task provides a small background runner used to refresh
// stale catalog and career snapshots without blocking evaluation
// requests.
package task

import "context"

// Task represents a unit of background work.
// Version: 1.0
type Task interface {
	// Key identifies the task for in-flight deduplication: while a
	// task with a given key is queued or running, submitting another
	// task with the same key is a no-op.
	Key() string

	// Run executes the task logic.
	Run(ctx context.Context) error
}

// Func adapts a plain function to the Task interface.
type Func struct {
	TaskKey string
	Fn      func(ctx context.Context) error
}

// Key implements Task.
func (f Func) Key() string { return f.TaskKey }

// Run implements Task.
func (f Func) Run(ctx context.Context) error { return f.Fn(ctx) }

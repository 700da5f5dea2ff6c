package task

import (
	"context"
	"log/slog"
	"sync"
)

// RunnerConfig holds configuration for the runner.
type RunnerConfig struct {
	// WorkerCount determines how many concurrent workers process tasks.
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory queue.
	QueueSize int
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 2,
		QueueSize:   64,
	}
}

// Runner manages background task processing. Tasks are deduplicated by
// key: a stale cache hit may fire many submissions for the same
// snapshot, but at most one refresh runs at a time per key.
type Runner struct {
	taskChan   chan Task
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	config     RunnerConfig
	logger     *slog.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewRunner creates a new Runner. If logger is nil, the default logger
// is used.
func NewRunner(config RunnerConfig, logger *slog.Logger) *Runner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		taskChan:   make(chan Task, config.QueueSize),
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     logger.With(slog.String("component", "task_runner")),
		inFlight:   make(map[string]bool),
	}
}

// Start launches the worker goroutines.
func (r *Runner) Start() {
	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
	r.logger.Info("task runner started",
		"workers", r.config.WorkerCount,
		"queue_size", r.config.QueueSize)
}

// Stop cancels the runner context and waits for workers to drain.
func (r *Runner) Stop() {
	r.cancelFunc()
	r.wg.Wait()
	r.logger.Info("task runner stopped")
}

// Submit enqueues a task unless one with the same key is already queued
// or running, or the queue is full. Returns whether the task was
// accepted. Submission never blocks: background refreshes are
// best-effort and a dropped refresh will be retried on the next stale
// hit.
func (r *Runner) Submit(t Task) bool {
	r.mu.Lock()
	if r.inFlight[t.Key()] {
		r.mu.Unlock()
		return false
	}
	r.inFlight[t.Key()] = true
	r.mu.Unlock()

	select {
	case r.taskChan <- t:
		return true
	default:
		r.clearInFlight(t.Key())
		r.logger.Warn("task queue full, dropping task", "task_key", t.Key())
		return false
	}
}

func (r *Runner) worker(id int) {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case t := <-r.taskChan:
			r.runTask(t, id)
		}
	}
}

func (r *Runner) runTask(t Task, workerID int) {
	defer r.clearInFlight(t.Key())

	if err := t.Run(r.ctx); err != nil {
		r.logger.Error("task execution failed",
			"task_key", t.Key(),
			"worker", workerID,
			"error", err)
		return
	}

	r.logger.Debug("task completed",
		"task_key", t.Key(),
		"worker", workerID)
}

func (r *Runner) clearInFlight(key string) {
	r.mu.Lock()
	delete(r.inFlight, key)
	r.mu.Unlock()
}

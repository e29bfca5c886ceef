package renderer

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Executor runs independent tasks, possibly in parallel.
// fn must be safe to call concurrently for different task indices.
type Executor interface {
	Run(tasks int, fn func(task int) error) error
	Workers() int
}

// Executor names accepted by NewExecutor
const (
	ExecutorPool   = "pool"
	ExecutorGroup  = "group"
	ExecutorSerial = "serial"
)

// PoolError reports an executor that could not be built
type PoolError struct {
	Executor string
	Workers  int
	Reason   string
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("build %s executor with %d workers: %s", e.Executor, e.Workers, e.Reason)
}

// NewExecutor creates an executor by name. workers == 0 uses one worker per CPU.
func NewExecutor(name string, workers int) (Executor, error) {
	if name == "" {
		name = ExecutorPool
	}
	if workers < 0 {
		return nil, &PoolError{Executor: name, Workers: workers, Reason: "worker count must not be negative"}
	}

	switch name {
	case ExecutorPool:
		return NewWorkerPool(workers), nil
	case ExecutorGroup:
		return NewGroupExecutor(workers), nil
	case ExecutorSerial:
		return SerialExecutor{}, nil
	default:
		return nil, &PoolError{Executor: name, Workers: workers, Reason: "unknown executor"}
	}
}

// SerialExecutor runs tasks in order on the calling goroutine
type SerialExecutor struct{}

func (SerialExecutor) Workers() int { return 1 }

// Run stops at the first failing task
func (SerialExecutor) Run(tasks int, fn func(task int) error) error {
	for task := 0; task < tasks; task++ {
		if err := fn(task); err != nil {
			return err
		}
	}
	return nil
}

// GroupExecutor runs every task in its own goroutine, at most workers at a time
type GroupExecutor struct {
	workers int
}

// NewGroupExecutor creates an errgroup backed executor
func NewGroupExecutor(workers int) *GroupExecutor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &GroupExecutor{workers: workers}
}

func (g *GroupExecutor) Workers() int { return g.workers }

// Run returns the first error reported by any task
func (g *GroupExecutor) Run(tasks int, fn func(task int) error) error {
	var group errgroup.Group
	group.SetLimit(g.workers)
	for task := 0; task < tasks; task++ {
		group.Go(func() error {
			return fn(task)
		})
	}
	return group.Wait()
}

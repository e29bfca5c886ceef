package renderer

import (
	"runtime"
	"sync"
)

// TaskResult contains the outcome of one task run by the worker pool
type TaskResult struct {
	TaskID int
	Error  error
}

// WorkerPool runs tasks on a fixed number of goroutines fed from a buffered queue
type WorkerPool struct {
	numWorkers int
}

// Worker consumes task indices until the queue is closed
type Worker struct {
	ID          int
	taskQueue   chan int
	resultQueue chan TaskResult
	fn          func(task int) error
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// Workers returns the number of workers in the pool
func (wp *WorkerPool) Workers() int {
	return wp.numWorkers
}

// Run executes fn for every task in [0, tasks) and waits for all of them.
// Every task runs even if an earlier one failed; the error of the lowest
// failing task is returned.
func (wp *WorkerPool) Run(tasks int, fn func(task int) error) error {
	if tasks <= 0 {
		return nil
	}

	taskQueue := make(chan int, tasks)          // Buffer for all tasks
	resultQueue := make(chan TaskResult, tasks) // Buffer for all results

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers && i < tasks; i++ {
		worker := &Worker{
			ID:          i,
			taskQueue:   taskQueue,
			resultQueue: resultQueue,
			fn:          fn,
		}
		wg.Add(1)
		go worker.run(&wg)
	}

	for task := 0; task < tasks; task++ {
		taskQueue <- task
	}
	close(taskQueue) // No more tasks
	wg.Wait()        // Wait for workers to finish
	close(resultQueue)

	var first *TaskResult
	for result := range resultQueue {
		if result.Error == nil {
			continue
		}
		if first == nil || result.TaskID < first.TaskID {
			r := result
			first = &r
		}
	}
	if first != nil {
		return first.Error
	}
	return nil
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- TaskResult{
			TaskID: task,
			Error:  w.fn(task),
		}
	}
}

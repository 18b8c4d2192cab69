package worker

import (
	"context"
	"log/slog"
	"sync"
)

type Job interface{}

type ProcessFunc func(ctx context.Context, job Job) error

type WorkerPool struct {
	name       string
	numWorkers int
	jobs       chan Job
	processor  ProcessFunc
	wg         sync.WaitGroup
}

func NewWorkerPool(name string, numWorkers int, bufferSize int, processor ProcessFunc) *WorkerPool {
	return &WorkerPool{
		name:       name,
		numWorkers: numWorkers,
		jobs:       make(chan Job, bufferSize),
		processor:  processor,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
	slog.Debug("worker pool started", "pool", wp.name, "workers", wp.numWorkers)
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-wp.jobs:
			if !ok {
				return
			}
			if err := wp.processor(ctx, job); err != nil {
				slog.Warn("job failed", "pool", wp.name, "worker", id, "error", err)
			}
		}
	}
}

// Submit blocks until the job is queued.
func (wp *WorkerPool) Submit(job Job) {
	wp.jobs <- job
}

// TrySubmit queues the job only if the buffer has room.
func (wp *WorkerPool) TrySubmit(job Job) bool {
	select {
	case wp.jobs <- job:
		return true
	default:
		return false
	}
}

// Pending is the number of queued jobs not yet picked up by a worker.
func (wp *WorkerPool) Pending() int {
	return len(wp.jobs)
}

func (wp *WorkerPool) Stop() {
	close(wp.jobs)
	wp.wg.Wait()
}

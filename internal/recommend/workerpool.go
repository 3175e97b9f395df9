package recommend

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI dispatches per-user recommendation refresh tasks to a
// fixed set of workers so one slow user never stalls the whole sweep.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task recomputes recommendations for a single user.
type Task func() error

type WorkerPool struct {
	pool chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

// worker drains the queue. A failed refresh is logged and dropped; the
// next sweep picks the user up again.
func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("recommendation refresh failed", zap.Error(err))
		}
	}
}

// AddTask blocks until a worker frees up or ctx is cancelled.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}

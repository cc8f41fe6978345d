package queue

import (
	"context"
	"errors"
	"sync"

	"reels-service/internal/domain/repositories"

	"go.uber.org/zap"
)

var ErrPoolClosed = errors.New("worker pool is shut down")

// WorkerPool runs cleanup jobs in-process. It is used when no Redis queue is
// configured.
type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc

	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(workerCount int, store repositories.ContentStore, log *zap.Logger) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.JobChan,
			Wg:      &pool.wg,
			Store:   store,
			Log:     log.Named("cleanup"),
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

// AddJob queues a job, blocking while the buffer is full until ctx is done.
func (p *WorkerPool) AddJob(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.JobChan <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPoolClosed
	}
}

func (p *WorkerPool) EnqueueDelete(ctx context.Context, locator string) error {
	return p.AddJob(ctx, NewDeleteJob(locator))
}

// Shutdown lets the workers drain what is already queued, then stops them.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.JobChan)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}

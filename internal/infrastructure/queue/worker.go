package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"reels-service/internal/domain/repositories"

	"go.uber.org/zap"
)

const (
	maxAttempts = 3
	retryDelay  = 500 * time.Millisecond
)

type Worker struct {
	ID      int        // worker id
	JobChan <-chan Job // job queue
	Wg      *sync.WaitGroup
	Store   repositories.ContentStore
	Log     *zap.Logger
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					w.Log.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.Log.Debug("worker stopping", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job Job) {
	var err error
	for attempt := job.Attempt; attempt < maxAttempts; attempt++ {
		if attempt > job.Attempt {
			select {
			case <-ctx.Done():
				w.Log.Warn("job abandoned", zap.String("locator", job.Locator), zap.Error(ctx.Err()))
				return
			case <-time.After(retryDelay):
			}
		}
		if err = Process(ctx, w.Store, job); err == nil {
			w.Log.Info("job succeeded",
				zap.Int("worker", w.ID),
				zap.String("type", string(job.Type)),
				zap.String("locator", job.Locator))
			return
		}
	}
	w.Log.Error("job failed",
		zap.Int("worker", w.ID),
		zap.String("type", string(job.Type)),
		zap.String("locator", job.Locator),
		zap.Error(err))
}

// Process runs a single job against the content store.
func Process(ctx context.Context, store repositories.ContentStore, job Job) error {
	switch job.Type {
	case JobDeleteFile:
		if job.Locator == "" {
			return fmt.Errorf("delete job without locator")
		}
		return store.Delete(ctx, job.Locator)
	default:
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
}

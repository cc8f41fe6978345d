package usecases

import (
	"context"
	"time"

	"reels-service/internal/domain/repositories"

	"go.uber.org/zap"
)

// defaultEnqueueTimeout bounds how long a request waits on a full cleanup
// queue.
const defaultEnqueueTimeout = 2 * time.Second

// fileRemover deletes stored files and falls back to the cleanup queue when
// the inline delete fails.
type fileRemover struct {
	store repositories.ContentStore
	queue repositories.CleanupQueue
	log   *zap.Logger

	enqueueTimeout time.Duration
}

func (r fileRemover) remove(ctx context.Context, locator string) error {
	// The row change is already final; finish even if the client went away.
	ctx = context.WithoutCancel(ctx)

	err := r.store.Delete(ctx, locator)
	if err == nil {
		return nil
	}
	r.log.Error("video file orphaned", zap.String("locator", locator), zap.Error(err))

	if r.queue == nil {
		return err
	}
	timeout := r.enqueueTimeout
	if timeout <= 0 {
		timeout = defaultEnqueueTimeout
	}
	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	// A dropped job is left for the orphan sweep.
	if qerr := r.queue.EnqueueDelete(qctx, locator); qerr != nil {
		r.log.Error("cleanup job dropped", zap.String("locator", locator), zap.Error(qerr))
	}
	return err
}

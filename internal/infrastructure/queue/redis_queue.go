package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reels-service/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const popTimeout = time.Second

// RedisQueue hands cleanup jobs to the standalone worker over a Redis list.
type RedisQueue struct {
	client *redis.Client
	key    string
	log    *zap.Logger
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

func NewRedisQueue(client *redis.Client, key string, log *zap.Logger) *RedisQueue {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisQueue{client: client, key: key, log: log.Named("redis_queue")}
}

func (q *RedisQueue) Push(ctx context.Context, job Job) error {
	payload, err := SerializeJob(job)
	if err != nil {
		return err
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("push job to %s: %w", q.key, err)
	}
	return nil
}

func (q *RedisQueue) EnqueueDelete(ctx context.Context, locator string) error {
	return q.Push(ctx, NewDeleteJob(locator))
}

// Consume pops jobs until ctx is cancelled. Jobs whose handler fails are
// pushed back with a bumped attempt counter until maxAttempts is reached.
func (q *RedisQueue) Consume(ctx context.Context, handle func(context.Context, Job) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		val, err := q.client.BRPop(ctx, popTimeout, q.key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			q.log.Warn("BRPop failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		job, err := DeserializeJob(val[1])
		if err != nil {
			q.log.Error("dropping malformed job", zap.String("payload", val[1]), zap.Error(err))
			continue
		}

		if err := handle(ctx, *job); err != nil {
			job.Attempt++
			if job.Attempt >= maxAttempts {
				q.log.Error("job failed, giving up",
					zap.String("type", string(job.Type)),
					zap.String("locator", job.Locator),
					zap.Error(err))
				continue
			}
			q.log.Warn("job failed, requeueing",
				zap.String("locator", job.Locator),
				zap.Int("attempt", job.Attempt),
				zap.Error(err))
			if err := q.Push(context.WithoutCancel(ctx), *job); err != nil {
				q.log.Error("requeue failed", zap.Error(err))
			}
			continue
		}
		q.log.Info("job succeeded", zap.String("type", string(job.Type)), zap.String("locator", job.Locator))
	}
}

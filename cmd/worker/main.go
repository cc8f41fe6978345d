package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"reels-service/internal/infrastructure/queue"
	"reels-service/internal/infrastructure/storage"
	"reels-service/internal/pkg/config"
	"reels-service/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Redis.Addr == "" {
		log.Fatal("REDIS_ADDR is required for the cleanup worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := queue.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}
	defer rdb.Close()

	localStorage := storage.NewLocalStorage(cfg.Upload.UploadsDir, cfg.Upload.PublicPrefix)
	q := queue.NewRedisQueue(rdb, cfg.Redis.Queue, log)

	log.Info("worker consuming", zap.String("queue", cfg.Redis.Queue), zap.String("uploads_dir", cfg.Upload.UploadsDir))
	// BRPOP loop
	err = q.Consume(ctx, func(ctx context.Context, job queue.Job) error {
		return queue.Process(ctx, localStorage, job)
	})
	if err != nil {
		log.Error("worker stopped", zap.Error(err))
		return
	}
	log.Info("worker stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "reels-service/docs"
	_ "reels-service/migrations"

	"reels-service/internal/delivery/http/routers"
	"reels-service/internal/domain/repositories"
	"reels-service/internal/infrastructure/db"
	"reels-service/internal/infrastructure/queue"
	infraRepo "reels-service/internal/infrastructure/repositories"
	"reels-service/internal/infrastructure/storage"
	"reels-service/internal/pkg/config"
	"reels-service/internal/pkg/logger"
	"reels-service/internal/pkg/metrics"
	"reels-service/internal/usecases"
	"reels-service/pkg/errors/i18n"

	"go.uber.org/zap"
)

// @title        Reels Service API
// @version      1.0
// @description  Short-video backend: uploads, reels and their videos.
// @host         localhost:3000
// @BasePath     /
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

	if err := i18n.Load(cfg.Server.Locale); err != nil {
		log.Warn("unknown locale, keeping default messages", zap.String("locale", cfg.Server.Locale), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.NewPostgresDB(cfg.Database, log)
	if err != nil {
		log.Fatal("DB connection failed", zap.Error(err))
	}
	sqlDB, err := database.DB()
	if err != nil {
		log.Fatal("could not get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.RunAutoMigration {
		if err := db.Migrate(ctx, sqlDB, "."); err != nil {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
		log.Info("migrations applied")
	}

	localStorage := storage.NewLocalStorage(cfg.Upload.UploadsDir, cfg.Upload.PublicPrefix)

	// Orphaned files go to the standalone worker when Redis is configured.
	var cleanupQueue repositories.CleanupQueue
	if cfg.Redis.Addr != "" {
		rdb, err := queue.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("redis connection failed", zap.Error(err))
		}
		defer rdb.Close()
		cleanupQueue = queue.NewRedisQueue(rdb, cfg.Redis.Queue, log)
		log.Info("cleanup jobs go to redis", zap.String("addr", cfg.Redis.Addr), zap.String("queue", cfg.Redis.Queue))
	} else {
		pool := queue.NewWorkerPool(cfg.Cleanup.Workers, localStorage, log)
		defer pool.Shutdown()
		cleanupQueue = pool
		log.Info("cleanup jobs run in-process", zap.Int("workers", cfg.Cleanup.Workers))
	}

	// Repositories & Services
	videoRepo := infraRepo.NewVideoRepository(database)
	reelRepo := infraRepo.NewReelRepository(database)

	services := routers.Services{
		Reels:  usecases.NewReelService(reelRepo, localStorage, cleanupQueue, log),
		Videos: usecases.NewVideoService(videoRepo, localStorage, cleanupQueue, log),
		Ingest: usecases.NewIngestService(videoRepo, reelRepo, localStorage, cleanupQueue, cfg.Upload.MaxFileSize, log),
	}

	cleanupUC := usecases.NewCleanupService(videoRepo, localStorage, log)
	scheduler, err := routers.SetupCleanupSchedule(cleanupUC, cfg.Cleanup, log)
	if err != nil {
		log.Fatal("cleanup schedule", zap.Error(err))
	}

	app := routers.NewApp(cfg, services, metrics.NewRequestCounter(log.Named("requests")))

	addr := cfg.Server.Addr()
	go func() {
		log.Info("server starting", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server did not shut down cleanly", zap.Error(err))
		return
	}
	log.Info("server stopped")
}

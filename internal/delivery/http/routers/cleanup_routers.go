package routers

import (
	"context"
	"fmt"
	"time"

	"reels-service/internal/pkg/config"
	"reels-service/internal/usecases"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = 10 * time.Minute

// SetupCleanupSchedule starts the periodic orphan sweep. The caller stops the
// returned scheduler on shutdown.
func SetupCleanupSchedule(cleanupUC usecases.CleanupService, cfg config.CleanupConfig, log *zap.Logger) (*cron.Cron, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		removed, err := cleanupUC.SweepOrphans(ctx, cfg.OrphanMinAge)
		if err != nil {
			log.Error("orphan sweep failed", zap.Int("removed", removed), zap.Error(err))
			return
		}
		log.Info("orphan sweep finished", zap.Int("removed", removed))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", cfg.Schedule, err)
	}

	c.Start()
	return c, nil
}

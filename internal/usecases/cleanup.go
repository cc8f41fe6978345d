package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reels-service/internal/domain/repositories"

	"go.uber.org/zap"
)

type CleanupService interface {
	// SweepOrphans deletes stored files older than minAge that no video row
	// references. It returns how many files were removed.
	SweepOrphans(ctx context.Context, minAge time.Duration) (int, error)
}

type cleanupService struct {
	videos repositories.VideoRepository
	store  repositories.ContentStore
	log    *zap.Logger
	now    func() time.Time
}

func NewCleanupService(videos repositories.VideoRepository, store repositories.ContentStore, log *zap.Logger) CleanupService {
	if log == nil {
		log = zap.NewNop()
	}
	return &cleanupService{
		videos: videos,
		store:  store,
		log:    log.Named("cleanup"),
		now:    time.Now,
	}
}

func (s *cleanupService) SweepOrphans(ctx context.Context, minAge time.Duration) (int, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stored files: %w", err)
	}

	// Young files may belong to an upload whose row is not committed yet.
	cutoff := s.now().Add(-minAge)
	removed := 0
	var errs []error
	for _, f := range files {
		if f.ModTime.After(cutoff) {
			continue
		}
		referenced, err := s.videos.ExistsByFileName(ctx, f.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if referenced {
			continue
		}
		if err := s.store.Delete(ctx, f.Locator); err != nil {
			s.log.Warn("could not remove orphaned file", zap.String("locator", f.Locator), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		removed++
		s.log.Info("removed orphaned file", zap.String("locator", f.Locator), zap.Int64("size", f.Size))
	}
	return removed, errors.Join(errs...)
}

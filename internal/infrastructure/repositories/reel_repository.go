package repositories

import (
	"context"
	"errors"

	"reels-service/internal/domain/entities"
	"reels-service/internal/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const newestFirst = "creation_timestamp DESC, id DESC"

type ReelRepository struct {
	db *gorm.DB
}

var _ repositories.ReelRepository = (*ReelRepository)(nil)

func NewReelRepository(db *gorm.DB) *ReelRepository {
	return &ReelRepository{db: db}
}

func (r *ReelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Reel, error) {
	var reel entities.Reel
	if err := r.db.WithContext(ctx).Take(&reel, "id = ?", id).Error; err != nil {
		return nil, translate("get reel", err)
	}
	return &reel, nil
}

func (r *ReelRepository) List(ctx context.Context, offset, limit int) ([]entities.Reel, error) {
	reels := make([]entities.Reel, 0, limit)
	err := r.db.WithContext(ctx).
		Order(newestFirst).
		Offset(offset).
		Limit(limit).
		Find(&reels).Error
	if err != nil {
		return nil, translate("list reels", err)
	}
	return reels, nil
}

func (r *ReelRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entities.Reel, error) {
	reels := make([]entities.Reel, 0, limit)
	err := r.db.WithContext(ctx).
		Where("posting_user_id = ?", userID).
		Order(newestFirst).
		Offset(offset).
		Limit(limit).
		Find(&reels).Error
	if err != nil {
		return nil, translate("list user reels", err)
	}
	return reels, nil
}

func (r *ReelRepository) Create(ctx context.Context, reel *entities.Reel) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Video{}).Where("id = ?", reel.VideoID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repositories.ErrRecordNotFound
		}

		if err := tx.Model(&entities.Reel{}).Where("video_id = ?", reel.VideoID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return repositories.ErrVideoInUse
		}

		res := tx.Create(reel)
		if res.Error != nil {
			return res.Error
		}
		rows = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translate("create reel", err)
	}
	return rows, nil
}

func (r *ReelRepository) CreateWithVideo(ctx context.Context, video *entities.Video, reel *entities.Reel) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(video).Error; err != nil {
			return err
		}
		reel.VideoID = video.ID
		return tx.Create(reel).Error
	})
	return translate("create reel with video", err)
}

func (r *ReelRepository) DeleteCascade(ctx context.Context, reelID uuid.UUID) (string, error) {
	var locator string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reel entities.Reel
		if err := tx.Select("id", "video_id").Take(&reel, "id = ?", reelID).Error; err != nil {
			return err
		}

		var video entities.Video
		videoErr := tx.Select("id", "video_url").Take(&video, "id = ?", reel.VideoID).Error
		switch {
		case videoErr == nil:
			locator = video.VideoURL
		case errors.Is(videoErr, gorm.ErrRecordNotFound):
			// video row already gone; the reel still has to go
		default:
			return videoErr
		}

		res := tx.Where("id = ?", reelID).Delete(&entities.Reel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost a race with a concurrent delete
			return repositories.ErrRecordNotFound
		}

		if videoErr == nil {
			if err := tx.Where("id = ?", reel.VideoID).Delete(&entities.Video{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", translate("delete reel", err)
	}
	return locator, nil
}

func (r *ReelRepository) ListWithVideos(ctx context.Context, offset, limit int) ([]entities.Reel, []entities.Video, error) {
	reels, err := r.List(ctx, offset, limit)
	if err != nil {
		return nil, nil, err
	}
	if len(reels) == 0 {
		return reels, []entities.Video{}, nil
	}

	ids := make([]uuid.UUID, 0, len(reels))
	for _, reel := range reels {
		ids = append(ids, reel.VideoID)
	}

	var found []entities.Video
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, nil, translate("list reel videos", err)
	}

	// Same order as the reels; missing videos are skipped.
	byID := make(map[uuid.UUID]entities.Video, len(found))
	for _, v := range found {
		byID[v.ID] = v
	}
	videos := make([]entities.Video, 0, len(found))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			videos = append(videos, v)
		}
	}
	return reels, videos, nil
}

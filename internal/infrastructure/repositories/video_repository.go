package repositories

import (
	"context"
	"strings"

	"reels-service/internal/domain/entities"
	"reels-service/internal/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

var _ repositories.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Video, error) {
	var video entities.Video
	if err := r.db.WithContext(ctx).Take(&video, "id = ?", id).Error; err != nil {
		return nil, translate("get video", err)
	}
	return &video, nil
}

func (r *VideoRepository) GetByReelID(ctx context.Context, reelID uuid.UUID) (*entities.Video, error) {
	owner := r.db.Model(&entities.Reel{}).Select("video_id").Where("id = ?", reelID)

	var video entities.Video
	if err := r.db.WithContext(ctx).Where("id IN (?)", owner).Take(&video).Error; err != nil {
		return nil, translate("get video by reel", err)
	}
	return &video, nil
}

func (r *VideoRepository) Create(ctx context.Context, video *entities.Video) (int64, error) {
	res := r.db.WithContext(ctx).Create(video)
	if res.Error != nil {
		return 0, translate("create video", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *VideoRepository) Update(ctx context.Context, id uuid.UUID, update repositories.VideoUpdate) (*entities.Video, error) {
	var video entities.Video
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&video, "id = ?", id).Error; err != nil {
			return err
		}

		changes := map[string]any{}
		if update.Title != nil {
			changes["title"] = *update.Title
			video.Title = *update.Title
		}
		if update.Description != nil {
			changes["description"] = *update.Description
			video.Description = *update.Description
		}
		if update.VideoLengthSeconds != nil {
			changes["video_length_seconds"] = *update.VideoLengthSeconds
			video.VideoLengthSeconds = *update.VideoLengthSeconds
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&entities.Video{}).Where("id = ?", id).Updates(changes).Error
	})
	if err != nil {
		return nil, translate("update video", err)
	}
	return &video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	var locator string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video entities.Video
		if err := tx.Select("id", "video_url").Take(&video, "id = ?", id).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&entities.Reel{}).Where("video_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return repositories.ErrVideoInUse
		}

		res := tx.Where("id = ?", id).Delete(&entities.Video{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repositories.ErrRecordNotFound
		}
		locator = video.VideoURL
		return nil
	})
	if err != nil {
		return "", translate("delete video", err)
	}
	return locator, nil
}

func (r *VideoRepository) ExistsByFileName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Video{}).
		Where("video_url = ? OR video_url LIKE ? ESCAPE '\\'", name, "%/"+likeEscaper.Replace(name)).
		Count(&count).Error
	if err != nil {
		return false, translate("lookup video file", err)
	}
	return count > 0, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

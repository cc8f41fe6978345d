package usecases

import (
	"context"
	"errors"

	"reels-service/internal/domain/dto"
	"reels-service/internal/domain/mapper"
	"reels-service/internal/domain/repositories"
	appErrors "reels-service/pkg/errors"
	"reels-service/pkg/helper"

	"go.uber.org/zap"
)

type VideoService interface {
	GetVideo(ctx context.Context, rawID string) (*dto.VideoResponse, error)
	GetVideoByReel(ctx context.Context, rawReelID string) (*dto.VideoResponse, error)
	UpdateVideo(ctx context.Context, rawID, userHeader string, req dto.UpdateVideoRequest) (*dto.VideoResponse, error)
	DeleteVideo(ctx context.Context, rawID string) (*dto.DeleteResponse, error)
}

type videoService struct {
	videos  repositories.VideoRepository
	remover fileRemover
	log     *zap.Logger
}

func NewVideoService(
	videos repositories.VideoRepository,
	store repositories.ContentStore,
	cleanup repositories.CleanupQueue,
	log *zap.Logger,
) VideoService {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("videos")
	return &videoService{
		videos:  videos,
		remover: fileRemover{store: store, queue: cleanup, log: log},
		log:     log,
	}
}

func (s *videoService) GetVideo(ctx context.Context, rawID string) (*dto.VideoResponse, error) {
	id, err := helper.ParseID("video", rawID)
	if err != nil {
		return nil, err
	}
	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, appErrors.ErrNotFound("video %s not found", id)
		}
		return nil, appErrors.ErrInternal("could not load video", err)
	}
	resp := mapper.VideoToDTO(video)
	return &resp, nil
}

func (s *videoService) GetVideoByReel(ctx context.Context, rawReelID string) (*dto.VideoResponse, error) {
	reelID, err := helper.ParseID("reel", rawReelID)
	if err != nil {
		return nil, err
	}
	video, err := s.videos.GetByReelID(ctx, reelID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, appErrors.ErrNotFound("no video for reel %s", reelID)
		}
		return nil, appErrors.ErrInternal("could not load video", err)
	}
	resp := mapper.VideoToDTO(video)
	return &resp, nil
}

// UpdateVideo changes the metadata fields present in req. The caller must
// identify itself but ownership is not enforced.
func (s *videoService) UpdateVideo(ctx context.Context, rawID, userHeader string, req dto.UpdateVideoRequest) (*dto.VideoResponse, error) {
	id, err := helper.ParseID("video", rawID)
	if err != nil {
		return nil, err
	}
	userID, err := helper.ParseUserID(userHeader)
	if err != nil {
		return nil, err
	}
	if req.VideoLengthSeconds != nil && *req.VideoLengthSeconds < 0 {
		return nil, appErrors.ErrBadRequest("video_length_seconds must not be negative")
	}

	video, err := s.videos.Update(ctx, id, repositories.VideoUpdate{
		Title:              req.Title,
		Description:        req.Description,
		VideoLengthSeconds: req.VideoLengthSeconds,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, appErrors.ErrNotFound("video %s not found", id)
		}
		return nil, appErrors.ErrInternal("could not update video", err)
	}

	s.log.Info("video updated", zap.Stringer("video_id", id), zap.Stringer("user_id", userID))
	resp := mapper.VideoToDTO(video)
	return &resp, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, rawID string) (*dto.DeleteResponse, error) {
	id, err := helper.ParseID("video", rawID)
	if err != nil {
		return nil, err
	}

	locator, err := s.videos.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrRecordNotFound):
			return nil, appErrors.ErrNotFound("video %s not found", id)
		case errors.Is(err, repositories.ErrVideoInUse):
			return nil, appErrors.ErrConflict("video %s belongs to a reel; delete the reel instead", id)
		default:
			return nil, appErrors.ErrInternal("could not delete video", err)
		}
	}

	if locator != "" {
		if err := s.remover.remove(ctx, locator); err != nil {
			return nil, appErrors.ErrInternal("video deleted but its file could not be removed", err)
		}
	}

	s.log.Info("video deleted", zap.Stringer("video_id", id), zap.String("video_url", locator))
	return &dto.DeleteResponse{VideoURL: locator}, nil
}

package usecases

import (
	"context"
	"errors"
	"strings"

	"reels-service/internal/domain/dto"
	"reels-service/internal/domain/entities"
	"reels-service/internal/domain/mapper"
	"reels-service/internal/domain/repositories"
	appErrors "reels-service/pkg/errors"
	"reels-service/pkg/helper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReelService interface {
	GetReel(ctx context.Context, rawID string) (*dto.ReelResponse, error)
	ListReels(ctx context.Context, page, limit string) ([]dto.ReelResponse, error)
	ListUserReels(ctx context.Context, userHeader, page, limit string) ([]dto.ReelResponse, error)
	ListReelsWithVideos(ctx context.Context, page, limit string) (*dto.ReelWithVideosResponse, error)
	CreateReel(ctx context.Context, req dto.CreateReelRequest) (*dto.CreateReelResponse, error)
	// DeleteReel removes the reel, its video row and then the video file.
	DeleteReel(ctx context.Context, rawID string) (*dto.DeleteResponse, error)
}

type reelService struct {
	reels   repositories.ReelRepository
	remover fileRemover
	log     *zap.Logger
}

func NewReelService(
	reels repositories.ReelRepository,
	store repositories.ContentStore,
	cleanup repositories.CleanupQueue,
	log *zap.Logger,
) ReelService {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("reels")
	return &reelService{
		reels:   reels,
		remover: fileRemover{store: store, queue: cleanup, log: log},
		log:     log,
	}
}

func (s *reelService) GetReel(ctx context.Context, rawID string) (*dto.ReelResponse, error) {
	id, err := helper.ParseID("reel", rawID)
	if err != nil {
		return nil, err
	}
	reel, err := s.reels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, appErrors.ErrNotFound("reel %s not found", id)
		}
		return nil, appErrors.ErrInternal("could not load reel", err)
	}
	resp := mapper.ReelToDTO(reel)
	return &resp, nil
}

func (s *reelService) ListReels(ctx context.Context, page, limit string) ([]dto.ReelResponse, error) {
	p, l := helper.ParsePagination(page, limit)
	reels, err := s.reels.List(ctx, helper.Offset(p, l), l)
	if err != nil {
		return nil, appErrors.ErrInternal("could not list reels", err)
	}
	return mapper.ReelsToDTO(reels), nil
}

func (s *reelService) ListUserReels(ctx context.Context, userHeader, page, limit string) ([]dto.ReelResponse, error) {
	userID, err := helper.ParseUserID(userHeader)
	if err != nil {
		return nil, err
	}
	p, l := helper.ParsePagination(page, limit)
	reels, err := s.reels.ListByUser(ctx, userID, helper.Offset(p, l), l)
	if err != nil {
		return nil, appErrors.ErrInternal("could not list user reels", err)
	}
	return mapper.ReelsToDTO(reels), nil
}

func (s *reelService) ListReelsWithVideos(ctx context.Context, page, limit string) (*dto.ReelWithVideosResponse, error) {
	p, l := helper.ParsePagination(page, limit)
	reels, videos, err := s.reels.ListWithVideos(ctx, helper.Offset(p, l), l)
	if err != nil {
		return nil, appErrors.ErrInternal("could not list reels with videos", err)
	}
	return &dto.ReelWithVideosResponse{
		Reels:  mapper.ReelsToDTO(reels),
		Videos: mapper.VideosToDTO(videos),
	}, nil
}

func (s *reelService) CreateReel(ctx context.Context, req dto.CreateReelRequest) (*dto.CreateReelResponse, error) {
	videoID, err := helper.ParseID("video", req.VideoID)
	if err != nil {
		return nil, err
	}
	userID, err := parsePostingUser(req.PostingUserID)
	if err != nil {
		return nil, err
	}

	reel := &entities.Reel{
		VideoID:       videoID,
		PostingUserID: userID,
		Title:         req.Title,
		Description:   req.Description,
	}
	if _, err := s.reels.Create(ctx, reel); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRecordNotFound):
			return nil, appErrors.ErrNotFound("video %s not found", videoID)
		case errors.Is(err, repositories.ErrVideoInUse):
			return nil, appErrors.ErrConflict("video %s already belongs to a reel", videoID)
		default:
			return nil, appErrors.ErrInternal("could not create reel", err)
		}
	}

	s.log.Info("reel created", zap.Stringer("reel_id", reel.ID), zap.Stringer("video_id", videoID))
	return &dto.CreateReelResponse{ID: reel.ID.String()}, nil
}

func (s *reelService) DeleteReel(ctx context.Context, rawID string) (*dto.DeleteResponse, error) {
	id, err := helper.ParseID("reel", rawID)
	if err != nil {
		return nil, err
	}

	locator, err := s.reels.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, appErrors.ErrNotFound("reel %s not found", id)
		}
		return nil, appErrors.ErrInternal("could not delete reel", err)
	}

	if locator != "" {
		if err := s.remover.remove(ctx, locator); err != nil {
			return nil, appErrors.ErrInternal("reel deleted but its video file could not be removed", err)
		}
	}

	s.log.Info("reel deleted", zap.Stringer("reel_id", id), zap.String("video_url", locator))
	return &dto.DeleteResponse{VideoURL: locator}, nil
}

// parsePostingUser validates a user id carried in a JSON body.
func parsePostingUser(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, appErrors.ErrBadRequest("missing or malformed posting_user_id")
	}
	return id, nil
}

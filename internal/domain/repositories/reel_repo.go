package repositories

import (
	"context"

	"reels-service/internal/domain/entities"

	"github.com/google/uuid"
)

type ReelRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Reel, error)
	List(ctx context.Context, offset, limit int) ([]entities.Reel, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entities.Reel, error)
	// Create inserts a reel that references an existing video. It fails with
	// ErrRecordNotFound when the video is missing and ErrVideoInUse when
	// another reel already owns it.
	Create(ctx context.Context, reel *entities.Reel) (int64, error)
	// CreateWithVideo inserts the video row and then the reel row in one
	// transaction.
	CreateWithVideo(ctx context.Context, video *entities.Video, reel *entities.Reel) error
	// DeleteCascade removes the reel and its video row in one transaction and
	// returns the video locator so the caller can remove the file after the
	// commit. The locator is empty when the video row was already gone.
	DeleteCascade(ctx context.Context, reelID uuid.UUID) (string, error)
	ListWithVideos(ctx context.Context, offset, limit int) ([]entities.Reel, []entities.Video, error)
}

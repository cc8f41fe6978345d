package repositories

import (
	"context"
	"errors"

	"reels-service/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrVideoInUse     = errors.New("video is referenced by a reel")
)

type VideoUpdate struct {
	Title              *string
	Description        *string
	VideoLengthSeconds *int32
}

type VideoRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Video, error)
	GetByReelID(ctx context.Context, reelID uuid.UUID) (*entities.Video, error)
	Create(ctx context.Context, video *entities.Video) (int64, error)
	Update(ctx context.Context, id uuid.UUID, update VideoUpdate) (*entities.Video, error)
	// Delete removes an unreferenced video row and returns its locator. It
	// fails with ErrVideoInUse while a reel points at the video.
	Delete(ctx context.Context, id uuid.UUID) (string, error)
	// ExistsByFileName reports whether any video_url ends in the stored
	// file name, whatever prefix the row was written with.
	ExistsByFileName(ctx context.Context, name string) (bool, error)
}

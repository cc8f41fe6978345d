package repositories

import (
	"context"
	"path"
	"strings"
	"testing"
	"time"

	"reels-service/internal/domain/entities"
	"reels-service/internal/domain/repositories"
	"reels-service/internal/testsupport"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoRepository_GetByID(t *testing.T) {
	videos := NewVideoRepository(testsupport.NewDB(t))
	ctx := context.Background()

	video := seedVideo(t, videos, uuid.New())

	got, err := videos.GetByID(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, *video, *got)

	_, err = videos.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestVideoRepository_GetByReelID(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	seeded := seedReels(t, reels, videos, uuid.New(), 2, time.Now().UTC())

	got, err := videos.GetByReelID(ctx, seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[1].VideoID, got.ID)

	_, err = videos.GetByReelID(ctx, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestVideoRepository_Update(t *testing.T) {
	videos := NewVideoRepository(testsupport.NewDB(t))
	ctx := context.Background()

	video := seedVideo(t, videos, uuid.New())
	title := "renamed"
	length := int32(0)

	updated, err := videos.Update(ctx, video.ID, repositories.VideoUpdate{Title: &title, VideoLengthSeconds: &length})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, video.Description, updated.Description)
	assert.Equal(t, int32(0), updated.VideoLengthSeconds)
	assert.Equal(t, video.VideoURL, updated.VideoURL)

	stored, err := videos.GetByID(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *stored)

	unchanged, err := videos.Update(ctx, video.ID, repositories.VideoUpdate{})
	require.NoError(t, err)
	assert.Equal(t, *stored, *unchanged)

	_, err = videos.Update(ctx, uuid.New(), repositories.VideoUpdate{Title: &title})
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestVideoRepository_Delete(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	free := seedVideo(t, videos, uuid.New())
	locator, err := videos.Delete(ctx, free.ID)
	require.NoError(t, err)
	assert.Equal(t, free.VideoURL, locator)

	_, err = videos.Delete(ctx, free.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)

	owned := seedReels(t, reels, videos, uuid.New(), 1, time.Now().UTC())[0]
	_, err = videos.Delete(ctx, owned.VideoID)
	assert.ErrorIs(t, err, repositories.ErrVideoInUse)

	_, err = videos.GetByID(ctx, owned.VideoID)
	assert.NoError(t, err)
}

func TestVideoRepository_ExistsByFileName(t *testing.T) {
	videos := NewVideoRepository(testsupport.NewDB(t))
	ctx := context.Background()

	video := seedVideo(t, videos, uuid.New())
	name := path.Base(video.VideoURL)

	ok, err := videos.ExistsByFileName(ctx, name)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = videos.ExistsByFileName(ctx, "unknown.mp4")
	require.NoError(t, err)
	assert.False(t, ok)

	// LIKE wildcards in a name are literal.
	ok, err = videos.ExistsByFileName(ctx, "%")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = videos.ExistsByFileName(ctx, strings.Repeat("_", len(name)))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVideoRepository_CreateAssignsID(t *testing.T) {
	videos := NewVideoRepository(testsupport.NewDB(t))

	video := &entities.Video{PostingUserID: uuid.New(), VideoURL: "/uploads/z.mp4"}
	_, err := videos.Create(context.Background(), video)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, video.ID)
}

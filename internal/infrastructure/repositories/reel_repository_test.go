package repositories

import (
	"context"
	"testing"
	"time"

	"reels-service/internal/domain/entities"
	"reels-service/internal/domain/repositories"
	"reels-service/internal/testsupport"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVideo(t *testing.T, repo *VideoRepository, owner uuid.UUID) *entities.Video {
	t.Helper()
	id := uuid.New()
	video := &entities.Video{
		ID:                 id,
		PostingUserID:      owner,
		Title:              "clip",
		Description:        "a clip",
		VideoLengthSeconds: 12,
		VideoURL:           "/uploads/" + id.String() + ".mp4",
	}
	rows, err := repo.Create(context.Background(), video)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)
	return video
}

func seedReels(t *testing.T, reels *ReelRepository, videos *VideoRepository, owner uuid.UUID, n int, base time.Time) []entities.Reel {
	t.Helper()
	out := make([]entities.Reel, 0, n)
	for i := 0; i < n; i++ {
		video := seedVideo(t, videos, owner)
		reel := &entities.Reel{
			ID:                uuid.New(),
			VideoID:           video.ID,
			PostingUserID:     owner,
			Title:             "reel",
			Description:       "desc",
			CreationTimestamp: base.Add(time.Duration(i) * time.Second),
		}
		_, err := reels.Create(context.Background(), reel)
		require.NoError(t, err)
		out = append(out, *reel)
	}
	return out
}

func TestReelRepository_CreateAndGet(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	owner := uuid.New()
	video := seedVideo(t, videos, owner)
	reel := &entities.Reel{
		ID:            uuid.New(),
		VideoID:       video.ID,
		PostingUserID: owner,
		Title:         "first",
		Description:   "hello",
	}

	rows, err := reels.Create(ctx, reel)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)
	assert.False(t, reel.CreationTimestamp.IsZero())

	got, err := reels.GetByID(ctx, reel.ID)
	require.NoError(t, err)
	assert.Equal(t, reel.ID, got.ID)
	assert.Equal(t, video.ID, got.VideoID)
	assert.Equal(t, owner, got.PostingUserID)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "hello", got.Description)
	assert.True(t, reel.CreationTimestamp.Equal(got.CreationTimestamp))
}

func TestReelRepository_GetMissing(t *testing.T) {
	reels := NewReelRepository(testsupport.NewDB(t))

	_, err := reels.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestReelRepository_CreateRejectsMissingOrOwnedVideo(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	_, err := reels.Create(ctx, &entities.Reel{ID: uuid.New(), VideoID: uuid.New(), PostingUserID: uuid.New()})
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)

	video := seedVideo(t, videos, uuid.New())
	_, err = reels.Create(ctx, &entities.Reel{ID: uuid.New(), VideoID: video.ID, PostingUserID: video.PostingUserID})
	require.NoError(t, err)

	_, err = reels.Create(ctx, &entities.Reel{ID: uuid.New(), VideoID: video.ID, PostingUserID: video.PostingUserID})
	assert.ErrorIs(t, err, repositories.ErrVideoInUse)
}

func TestReelRepository_ListNewestFirstAndPaged(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seeded := seedReels(t, reels, videos, uuid.New(), 25, base)

	page1, err := reels.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, page1, 10)
	assert.Equal(t, seeded[24].ID, page1[0].ID)
	assert.Equal(t, seeded[15].ID, page1[9].ID)

	page3, err := reels.List(ctx, 20, 10)
	require.NoError(t, err)
	require.Len(t, page3, 5)
	assert.Equal(t, seeded[4].ID, page3[0].ID)
	assert.Equal(t, seeded[0].ID, page3[4].ID)

	for i := 1; i < len(page1); i++ {
		assert.False(t, page1[i].CreationTimestamp.After(page1[i-1].CreationTimestamp))
	}

	beyond, err := reels.List(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)
	assert.NotNil(t, beyond)
}

func TestReelRepository_ListByUser(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	alice := uuid.New()
	bob := uuid.New()
	mine := seedReels(t, reels, videos, alice, 3, base)
	seedReels(t, reels, videos, bob, 4, base.Add(time.Minute))

	got, err := reels.ListByUser(ctx, alice, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, r := range got {
		assert.Equal(t, alice, r.PostingUserID)
	}
	assert.Equal(t, mine[2].ID, got[0].ID)

	none, err := reels.ListByUser(ctx, uuid.New(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReelRepository_CreateWithVideo(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	owner := uuid.New()
	video := &entities.Video{ID: uuid.New(), PostingUserID: owner, Title: "v", VideoURL: "/uploads/x.mp4"}
	reel := &entities.Reel{ID: uuid.New(), PostingUserID: owner, Title: "r"}

	require.NoError(t, reels.CreateWithVideo(ctx, video, reel))
	assert.Equal(t, video.ID, reel.VideoID)

	got, err := videos.GetByReelID(ctx, reel.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/x.mp4", got.VideoURL)
}

func TestReelRepository_CreateWithVideoRollsBack(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	taken := seedVideo(t, videos, uuid.New())
	existing := &entities.Reel{ID: uuid.New(), VideoID: taken.ID, PostingUserID: taken.PostingUserID}
	_, err := reels.Create(ctx, existing)
	require.NoError(t, err)

	// Reusing the reel id makes the second insert fail after the video insert.
	video := &entities.Video{ID: uuid.New(), PostingUserID: uuid.New(), VideoURL: "/uploads/y.mp4"}
	err = reels.CreateWithVideo(ctx, video, &entities.Reel{ID: existing.ID, PostingUserID: video.PostingUserID})
	require.Error(t, err)

	_, err = videos.GetByID(ctx, video.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestReelRepository_DeleteCascade(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	seeded := seedReels(t, reels, videos, uuid.New(), 1, time.Now().UTC())
	reel := seeded[0]
	video, err := videos.GetByID(ctx, reel.VideoID)
	require.NoError(t, err)

	locator, err := reels.DeleteCascade(ctx, reel.ID)
	require.NoError(t, err)
	assert.Equal(t, video.VideoURL, locator)

	_, err = reels.GetByID(ctx, reel.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
	_, err = videos.GetByID(ctx, reel.VideoID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)

	_, err = reels.DeleteCascade(ctx, reel.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestReelRepository_DeleteCascadeWithoutVideoRow(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	seeded := seedReels(t, reels, videos, uuid.New(), 1, time.Now().UTC())
	reel := seeded[0]
	require.NoError(t, database.Where("id = ?", reel.VideoID).Delete(&entities.Video{}).Error)

	locator, err := reels.DeleteCascade(ctx, reel.ID)
	require.NoError(t, err)
	assert.Empty(t, locator)

	_, err = reels.GetByID(ctx, reel.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestReelRepository_ListWithVideos(t *testing.T) {
	database := testsupport.NewDB(t)
	reels := NewReelRepository(database)
	videos := NewVideoRepository(database)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seedReels(t, reels, videos, uuid.New(), 3, base)

	gotReels, gotVideos, err := reels.ListWithVideos(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, gotReels, 3)
	require.Len(t, gotVideos, 3)
	for i := range gotReels {
		assert.Equal(t, gotReels[i].VideoID, gotVideos[i].ID)
	}

	emptyReels, emptyVideos, err := reels.ListWithVideos(ctx, 50, 10)
	require.NoError(t, err)
	assert.Empty(t, emptyReels)
	assert.NotNil(t, emptyVideos)
	assert.Empty(t, emptyVideos)
}

package usecases

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"sync"
	"testing"

	"reels-service/internal/domain/entities"
	"reels-service/internal/domain/repositories"
	infraRepo "reels-service/internal/infrastructure/repositories"
	"reels-service/internal/infrastructure/storage"
	"reels-service/internal/testsupport"
	appErrors "reels-service/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	dir    string
	videos *infraRepo.VideoRepository
	reels  *infraRepo.ReelRepository
	store  *storage.LocalStorage
	queue  *recordingQueue
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testsupport.NewDB(t)
	dir := t.TempDir()
	return &testEnv{
		db:     database,
		dir:    dir,
		videos: infraRepo.NewVideoRepository(database),
		reels:  infraRepo.NewReelRepository(database),
		store:  storage.NewLocalStorage(dir, "/uploads"),
		queue:  &recordingQueue{},
	}
}

func (e *testEnv) storedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func (e *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

type recordingQueue struct {
	mu       sync.Mutex
	locators []string
}

func (q *recordingQueue) EnqueueDelete(_ context.Context, locator string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.locators = append(q.locators, locator)
	return nil
}

func (q *recordingQueue) Locators() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.locators...)
}

// brokenDeleteStore writes normally but refuses to delete.
type brokenDeleteStore struct {
	repositories.ContentStore
}

func (brokenDeleteStore) Delete(context.Context, string) error {
	return errors.New("device busy")
}

// failingVideoRepo fails every insert.
type failingVideoRepo struct {
	repositories.VideoRepository
}

func (failingVideoRepo) Create(context.Context, *entities.Video) (int64, error) {
	return 0, errors.New("connection reset")
}

type failingReelRepo struct {
	repositories.ReelRepository
}

func (failingReelRepo) CreateWithVideo(context.Context, *entities.Video, *entities.Reel) error {
	return errors.New("connection reset")
}

type formPart struct {
	name     string
	fileName string // empty for plain values
	content  string
}

func buildForm(t *testing.T, parts ...formPart) *multipart.Form {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		if p.fileName == "" {
			require.NoError(t, w.WriteField(p.name, p.content))
			continue
		}
		fw, err := w.CreateFormFile(p.name, p.fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func assertAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

// stuckQueue never accepts a job until the caller gives up.
type stuckQueue struct{}

func (stuckQueue) EnqueueDelete(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

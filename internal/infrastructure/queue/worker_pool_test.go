package queue

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"reels-service/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWorkerPoolDeletesFiles(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewLocalStorage(dir, "/uploads")
	ctx := context.Background()

	first, err := store.Write(ctx, "one", "a.mp4", []byte("0123456789"))
	require.NoError(t, err)
	second, err := store.Write(ctx, "two", "b.mp4", []byte("abc"))
	require.NoError(t, err)

	pool := NewWorkerPool(2, store, zap.NewNop())
	require.NoError(t, pool.EnqueueDelete(ctx, first))
	require.NoError(t, pool.EnqueueDelete(ctx, second))
	// Already gone: still succeeds.
	require.NoError(t, pool.EnqueueDelete(ctx, "/uploads/missing.mp4"))
	pool.Shutdown()

	assert.NoFileExists(t, filepath.Join(dir, "one.mp4"))
	assert.NoFileExists(t, filepath.Join(dir, "two.mp4"))
}

func TestWorkerPoolRejectsAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(1, storage.NewLocalStorage(t.TempDir(), "/uploads"), nil)
	pool.Shutdown()
	pool.Shutdown()

	err := pool.EnqueueDelete(context.Background(), "/uploads/x.mp4")
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestProcessUnknownJob(t *testing.T) {
	store := storage.NewLocalStorage(t.TempDir(), "/uploads")

	assert.Error(t, Process(context.Background(), store, Job{Type: "resize"}))
	assert.Error(t, Process(context.Background(), store, Job{Type: JobDeleteFile}))
}

func TestWorkerGivesUpOnBadLocator(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.mp4")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	pool := NewWorkerPool(1, storage.NewLocalStorage(dir, "/uploads"), zap.NewNop())
	start := time.Now()
	require.NoError(t, pool.AddJob(context.Background(), Job{Type: JobDeleteFile, Locator: "/elsewhere/keep.mp4", Attempt: maxAttempts - 1}))
	pool.Shutdown()

	assert.FileExists(t, keep)
	assert.Less(t, time.Since(start), 5*time.Second)
}

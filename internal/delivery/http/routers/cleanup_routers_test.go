package routers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"reels-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls  atomic.Int32
	minAge atomic.Int64
}

func (s *countingSweeper) SweepOrphans(_ context.Context, minAge time.Duration) (int, error) {
	s.calls.Add(1)
	s.minAge.Store(int64(minAge))
	return 0, nil
}

func TestSetupCleanupSchedule(t *testing.T) {
	sweeper := &countingSweeper{}
	c, err := SetupCleanupSchedule(sweeper, config.CleanupConfig{Schedule: "* * * * * *", OrphanMinAge: time.Minute}, nil)
	require.NoError(t, err)
	defer c.Stop()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	assert.Equal(t, int64(time.Minute), sweeper.minAge.Load())
}

func TestSetupCleanupScheduleRejectsBadSpec(t *testing.T) {
	_, err := SetupCleanupSchedule(&countingSweeper{}, config.CleanupConfig{Schedule: "every now and then"}, nil)
	assert.Error(t, err)
}

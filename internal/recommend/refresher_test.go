package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/config"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Refresher, *MockRecommendService, *MockUserRepo, *MockWorkerPoolI) {
	cfg := &config.Config{RecommendInterval: 10 * time.Minute, RecommendWorkers: 2}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recommendService := NewMockRecommendService(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)
	refresher := New(cfg, recommendService, userRepo)
	refresher.workerPool = workerPool
	return refresher, recommendService, userRepo, workerPool
}

func TestRefresher_Start(t *testing.T) {
	refresher, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refresher.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestRefresher_refreshAll(t *testing.T) {
	t.Run("refreshes every active user", func(t *testing.T) {
		refresher, recommendService, userRepo, workerPool := NewMock(t)
		ctx := context.Background()

		recommendService.EXPECT().PruneExpired(ctx).Return(nil)
		userRepo.EXPECT().RecentlyActiveIDs(ctx, gomock.Any()).Return([]int{1, 2}, nil)
		workerPool.EXPECT().
			AddTask(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, task Task) error {
				return task()
			}).Times(2)
		recommendService.EXPECT().RefreshUser(ctx, 1).Return(nil)
		recommendService.EXPECT().RefreshUser(ctx, 2).Return(nil)

		refresher.refreshAll(ctx)
	})

	t.Run("skips users already being refreshed", func(t *testing.T) {
		refresher, recommendService, userRepo, workerPool := NewMock(t)
		ctx := context.Background()

		refreshingUsers.Store(1, struct{}{})
		defer refreshingUsers.Delete(1)

		recommendService.EXPECT().PruneExpired(ctx).Return(nil)
		userRepo.EXPECT().RecentlyActiveIDs(ctx, gomock.Any()).Return([]int{1, 2}, nil)
		workerPool.EXPECT().
			AddTask(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, task Task) error {
				return task()
			})
		recommendService.EXPECT().RefreshUser(ctx, 2).Return(nil)

		refresher.refreshAll(ctx)
	})

	t.Run("stops when active users cannot be fetched", func(t *testing.T) {
		refresher, recommendService, userRepo, _ := NewMock(t)
		ctx := context.Background()

		recommendService.EXPECT().PruneExpired(ctx).Return(nil)
		userRepo.EXPECT().RecentlyActiveIDs(ctx, gomock.Any()).Return(nil, assert.AnError)

		refresher.refreshAll(ctx)
	})

	t.Run("clears the in-flight marker when the pool rejects the task", func(t *testing.T) {
		refresher, recommendService, userRepo, workerPool := NewMock(t)
		ctx := context.Background()

		recommendService.EXPECT().PruneExpired(ctx).Return(nil)
		userRepo.EXPECT().RecentlyActiveIDs(ctx, gomock.Any()).Return([]int{1}, nil)
		workerPool.EXPECT().AddTask(ctx, gomock.Any()).Return(context.Canceled)

		refresher.refreshAll(ctx)

		_, inFlight := refreshingUsers.Load(1)
		assert.False(t, inFlight)
	})
}

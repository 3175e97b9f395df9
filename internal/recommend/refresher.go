package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zestbet/zestbet/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=refresher.go -destination=mocks.go -package=recommend

// activityWindow matches the recommendation lifetime: users with no ledger
// activity for a week have nothing active left to refresh.
const activityWindow = 7 * 24 * time.Hour

var refreshingUsers sync.Map

type RecommendService interface {
	RefreshUser(ctx context.Context, userID int) error
	PruneExpired(ctx context.Context) error
}

type UserRepo interface {
	RecentlyActiveIDs(ctx context.Context, since time.Time) ([]int, error)
}

// Refresher periodically rebuilds recommendation sets for recently active
// users so the feed stays warm without a request having to pay for generation.
type Refresher struct {
	recommendService RecommendService
	userRepo         UserRepo
	workerPool       WorkerPoolI
	refreshInterval  time.Duration
}

func New(cfg *config.Config, recommendService RecommendService, userRepo UserRepo) *Refresher {
	return &Refresher{
		recommendService: recommendService,
		userRepo:         userRepo,
		workerPool:       NewWorkerPool(cfg.RecommendWorkers),
		refreshInterval:  cfg.RecommendInterval,
	}
}

func (s *Refresher) Start(ctx context.Context) {
	zap.L().Info("Recommendation refresher started")
	go s.run(ctx)
}

func (s *Refresher) run(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping refresher")
			return
		case <-ticker.C:
			s.refreshAll(ctx)
		}
	}
}

func (s *Refresher) refreshAll(ctx context.Context) {
	if err := s.recommendService.PruneExpired(ctx); err != nil {
		zap.L().Error("Failed to prune expired recommendations", zap.Error(err))
	}

	userIDs, err := s.userRepo.RecentlyActiveIDs(ctx, time.Now().Add(-activityWindow))
	if err != nil {
		zap.L().Error("Failed to fetch active users", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, userID := range userIDs {
		userID := userID

		if _, loaded := refreshingUsers.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer refreshingUsers.Delete(userID)
				if err := s.recommendService.RefreshUser(ctx, userID); err != nil {
					return fmt.Errorf("failed to refresh recommendations for user %d: %w", userID, err)
				}
				return nil
			})
			if err != nil {
				refreshingUsers.Delete(userID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error refreshing recommendations", zap.Error(err))
	}
}

package missionservice

import (
	"context"
	"fmt"
	"time"

	"github.com/zestbet/zestbet/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=missionservice.go -destination=mocks.go -package=missionservice

type MissionRepo interface {
	FindAll(ctx context.Context) ([]domain.Mission, error)
	FindByTitleLike(ctx context.Context, fragment string) (*domain.Mission, error)
	CreateUserMissions(ctx context.Context, userID int) error
	Claim(ctx context.Context, userID, missionID int, completedAt time.Time) (bool, error)
	FindUserMissions(ctx context.Context, userID int) ([]domain.UserMission, error)
}

type UserRepo interface {
	UpdateBalance(ctx context.Context, userID int, delta int64) (int64, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	missionRepo MissionRepo
	userRepo    UserRepo
	txRepo      TransactionRepo
	now         func() time.Time
}

func New(missionRepo MissionRepo, userRepo UserRepo, txRepo TransactionRepo) *Service {
	return &Service{
		missionRepo: missionRepo,
		userRepo:    userRepo,
		txRepo:      txRepo,
		now:         time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SeedForUser creates one open progress row per existing mission template.
// Called once at registration.
func (s *Service) SeedForUser(ctx context.Context, userID int) error {
	return s.missionRepo.CreateUserMissions(ctx, userID)
}

// CompleteByTitle claims the mission whose title contains the fragment and
// pays its reward. Returns the claimed mission, or nil when no mission
// matched or the user already completed it. The claim is a single
// compare-and-swap update, so the reward pays at most once per
// (user, mission) pair even under concurrent settlements.
func (s *Service) CompleteByTitle(ctx context.Context, userID int, fragment string) (*domain.Mission, error) {
	mission, err := s.missionRepo.FindByTitleLike(ctx, fragment)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, nil
	}

	claimed, err := s.missionRepo.Claim(ctx, userID, mission.ID, s.now())
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, nil
	}

	if _, err := s.userRepo.UpdateBalance(ctx, userID, mission.Reward); err != nil {
		return nil, err
	}
	if _, err := s.txRepo.Create(ctx, &domain.Transaction{
		UserID:      userID,
		Amount:      mission.Reward,
		Kind:        domain.TxMission,
		Description: fmt.Sprintf("Completed mission: %s", mission.Title),
	}); err != nil {
		return nil, err
	}

	zap.L().Info("mission completed",
		zap.Int("user_id", userID), zap.String("mission", mission.Title), zap.Int64("reward", mission.Reward))
	return mission, nil
}

func (s *Service) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	return s.missionRepo.FindAll(ctx)
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.Mission, []domain.UserMission, error) {
	missions, err := s.missionRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	progress, err := s.missionRepo.FindUserMissions(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return missions, progress, nil
}

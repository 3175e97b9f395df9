package notifyservice

import (
	"context"
	"errors"

	"github.com/zestbet/zestbet/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notifyservice.go -destination=mocks.go -package=notifyservice

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int) (bool, error)
	MarkAllRead(ctx context.Context, userID int) error
}

var ErrNotificationNotFound = errors.New("notification not found")

// Service is a best-effort notification sink. Delivery failures are logged
// and never surfaced: a lost notification must not affect the financial
// mutation that triggered it.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Notify(ctx context.Context, n *domain.Notification) {
	if err := s.repo.Create(ctx, n); err != nil {
		zap.L().Error("failed to deliver notification",
			zap.Int("user_id", n.UserID), zap.String("kind", n.Kind), zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Notification, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, notificationID, userID int) error {
	ok, err := s.repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int) error {
	return s.repo.MarkAllRead(ctx, userID)
}

package walletservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=mocks.go -package=walletservice

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalance(ctx context.Context, userID int, delta int64) (int64, error)
	UpdateSpending(ctx context.Context, userID int, balance, dailySpent int64, lastSpendDate time.Time) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrDailyLimitExceeded = errors.New("daily free Zest limit exceeded")
)

type Service struct {
	userRepo  UserRepo
	txRepo    TransactionRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(userRepo UserRepo, txRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		txRepo:    txRepo,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	return s.txRepo.FindByUserID(ctx, userID)
}

// GrantDaily hands out free Zest against the shared daily allowance. The
// grant is clamped to whatever is left of today's limit and counts against
// the same counter bet stakes do.
func (s *Service) GrantDaily(ctx context.Context, userID int, amount int64) (int64, int64, error) {
	if amount <= 0 {
		return 0, 0, ErrInvalidAmount
	}
	now := s.now()

	var newBalance, granted int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		dailySpent := user.DailySpent
		if user.LastSpendDate == nil || !sameCalendarDay(*user.LastSpendDate, now) {
			dailySpent = 0
		}
		remaining := domain.DailyZestLimit - dailySpent
		if remaining <= 0 {
			return fmt.Errorf("%w: come back tomorrow", ErrDailyLimitExceeded)
		}

		granted = amount
		if granted > remaining {
			granted = remaining
		}

		newBalance = user.Balance + granted
		if err := s.userRepo.UpdateSpending(ctx, userID, newBalance, dailySpent+granted, startOfDay(now)); err != nil {
			return err
		}
		_, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      granted,
			Kind:        domain.TxDaily,
			Description: "Added free Zest",
		})
		return err
	})
	if err != nil {
		return 0, 0, err
	}

	zap.L().Info("daily zest granted", zap.Int("user_id", userID), zap.Int64("granted", granted))
	return newBalance, granted, nil
}

// Purchase credits bought Zest. The voucher code is validated upstream.
func (s *Service) Purchase(ctx context.Context, userID int, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var newBalance int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		newBalance, err = s.userRepo.UpdateBalance(ctx, userID, amount)
		if err != nil {
			return err
		}
		_, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      amount,
			Kind:        domain.TxPurchase,
			Description: fmt.Sprintf("Purchased %d Zest", amount),
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

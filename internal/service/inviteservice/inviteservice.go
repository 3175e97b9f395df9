package inviteservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=inviteservice.go -destination=mocks.go -package=inviteservice

type UserRepo interface {
	FindByInviteCode(ctx context.Context, code string) (*domain.User, error)
	UpdateBalance(ctx context.Context, userID int, delta int64) (int64, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ExistsByUserAndKind(ctx context.Context, userID int, kind string) (bool, error)
}

type MissionCompleter interface {
	CompleteByTitle(ctx context.Context, userID int, fragment string) (*domain.Mission, error)
}

type Notifier interface {
	Notify(ctx context.Context, n *domain.Notification)
}

// InviteReward is credited to both sides of a redeemed invite.
const InviteReward int64 = 50

const inviteMissionFragment = "invite"

var (
	ErrInvalidCode     = errors.New("invalid invite code")
	ErrSelfReferral    = errors.New("you cannot redeem your own invite code")
	ErrAlreadyRedeemed = errors.New("invite code already redeemed")
)

type Service struct {
	userRepo  UserRepo
	txRepo    TransactionRepo
	missions  MissionCompleter
	notifier  Notifier
	txManager pg.TXManager
}

func New(userRepo UserRepo, txRepo TransactionRepo, missions MissionCompleter, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:  userRepo,
		txRepo:    txRepo,
		missions:  missions,
		notifier:  notifier,
		txManager: txManager,
	}
}

// Redeem credits both the invitee and the code owner, records the paired
// ledger entries and claims the owner's invite mission. A user can redeem
// at most one code, ever.
func (s *Service) Redeem(ctx context.Context, userID int, code string) (int64, error) {
	var (
		newBalance       int64
		inviter          *domain.User
		completedMission *domain.Mission
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		inviter, err = s.userRepo.FindByInviteCode(ctx, code)
		if err != nil {
			return err
		}
		if inviter == nil {
			return ErrInvalidCode
		}
		if inviter.ID == userID {
			return ErrSelfReferral
		}

		redeemed, err := s.txRepo.ExistsByUserAndKind(ctx, userID, domain.TxInvite)
		if err != nil {
			return err
		}
		if redeemed {
			return ErrAlreadyRedeemed
		}

		newBalance, err = s.userRepo.UpdateBalance(ctx, userID, InviteReward)
		if err != nil {
			return err
		}
		if _, err = s.userRepo.UpdateBalance(ctx, inviter.ID, InviteReward); err != nil {
			return err
		}

		if _, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      InviteReward,
			Kind:        domain.TxInvite,
			Description: fmt.Sprintf("Redeemed invite code from %s", inviter.Username),
		}); err != nil {
			return err
		}
		if _, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:      inviter.ID,
			Amount:      InviteReward,
			Kind:        domain.TxInvite,
			Description: "Your invite code was redeemed",
		}); err != nil {
			return err
		}

		completedMission, err = s.missions.CompleteByTitle(ctx, inviter.ID, inviteMissionFragment)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.notifier.Notify(ctx, &domain.Notification{
		UserID:  inviter.ID,
		Title:   "Invite Redeemed",
		Message: fmt.Sprintf("Someone joined with your code. You earned %d Zest!", InviteReward),
		Kind:    domain.NotifyInvite,
	})
	s.notifier.Notify(ctx, &domain.Notification{
		UserID:  userID,
		Title:   "Invite Bonus",
		Message: fmt.Sprintf("You redeemed %s's invite code and earned %d Zest!", inviter.Username, InviteReward),
		Kind:    domain.NotifyInvite,
	})
	if completedMission != nil {
		s.notifier.Notify(ctx, &domain.Notification{
			UserID: inviter.ID,
			Title:  "Mission Completed!",
			Kind:   domain.NotifyMissionComplete,
			Message: fmt.Sprintf("You completed the mission %q and earned %d Zest!",
				completedMission.Title, completedMission.Reward),
		})
	}

	zap.L().Info("invite redeemed", zap.Int("user_id", userID), zap.Int("inviter_id", inviter.ID))
	return newBalance, nil
}

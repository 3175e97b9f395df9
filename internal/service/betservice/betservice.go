package betservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=betservice.go -destination=mocks.go -package=betservice

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateSpending(ctx context.Context, userID int, balance, dailySpent int64, lastSpendDate time.Time) error
	UpdateBalance(ctx context.Context, userID int, delta int64) (int64, error)
	UpdatePrefs(ctx context.Context, userID int, prefs domain.Vector) error
	AddPoints(ctx context.Context, userID int, delta int64) error
}

type BetRepo interface {
	Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error)
	FindByID(ctx context.Context, betID int) (*domain.Bet, error)
	FindOpen(ctx context.Context) ([]domain.Bet, error)
	FindEnded(ctx context.Context) ([]domain.Bet, error)
	AddToPool(ctx context.Context, betID int, amount int64) error
	Resolve(ctx context.Context, betID int, winningPrediction string) (bool, error)
	ToggleLike(ctx context.Context, betID, userID int) (bool, error)
}

type PlacementRepo interface {
	Create(ctx context.Context, placement *domain.BetPlacement) (*domain.BetPlacement, error)
	FindByUserAndBet(ctx context.Context, userID, betID int) (*domain.BetPlacement, error)
	FindByBet(ctx context.Context, betID int) ([]domain.BetPlacement, error)
	FindByUser(ctx context.Context, userID int) ([]domain.BetPlacement, error)
	MarkWinners(ctx context.Context, betID int, winningPrediction string) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

type ProjectRepo interface {
	FindFeatured(ctx context.Context) (*domain.ImpactProject, error)
	AddAmount(ctx context.Context, projectID int, amount int64) error
}

type MissionCompleter interface {
	CompleteByTitle(ctx context.Context, userID int, fragment string) (*domain.Mission, error)
}

type Notifier interface {
	Notify(ctx context.Context, n *domain.Notification)
}

const (
	feePercent     = 10
	charityPercent = 20
	// prefAlpha is the learning rate of the preference moving average.
	prefAlpha = 0.05

	firstBetMissionFragment = "first bet"
)

var (
	ErrBetNotFound         = errors.New("bet not found")
	ErrBetClosed           = errors.New("this bet has ended")
	ErrAlreadyPlaced       = errors.New("you have already placed a bet")
	ErrStakeOutOfRange     = errors.New("stake out of range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDailyLimitExceeded  = errors.New("daily bet limit exceeded")
	ErrPredictionRequired  = errors.New("prediction is required")
	ErrBetResolved         = errors.New("bet already resolved")
	ErrNotCreator          = errors.New("only the bet creator can resolve it")
)

type Service struct {
	userRepo      UserRepo
	betRepo       BetRepo
	placementRepo PlacementRepo
	txRepo        TransactionRepo
	projectRepo   ProjectRepo
	missions      MissionCompleter
	notifier      Notifier
	txManager     pg.TXManager
	now           func() time.Time
}

func New(
	userRepo UserRepo,
	betRepo BetRepo,
	placementRepo PlacementRepo,
	txRepo TransactionRepo,
	projectRepo ProjectRepo,
	missions MissionCompleter,
	notifier Notifier,
	txManager pg.TXManager,
) *Service {
	return &Service{
		userRepo:      userRepo,
		betRepo:       betRepo,
		placementRepo: placementRepo,
		txRepo:        txRepo,
		projectRepo:   projectRepo,
		missions:      missions,
		notifier:      notifier,
		txManager:     txManager,
		now:           time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin the calendar.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// PlaceBet settles a prediction: it validates the placement, splits the
// fee, debits the user, credits the pool and the featured charity, appends
// the ledger entry, claims the "first bet" mission and adapts the user's
// preference vector. Everything is committed as a single transaction;
// notifications go out only after the commit.
func (s *Service) PlaceBet(ctx context.Context, userID, betID int, amount int64, prediction string) (*domain.BetPlacement, int64, error) {
	now := s.now()

	var (
		placement        *domain.BetPlacement
		newBalance       int64
		bet              *domain.Bet
		completedMission *domain.Mission
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		bet, err = s.betRepo.FindByID(ctx, betID)
		if err != nil {
			return err
		}
		if bet == nil {
			return ErrBetNotFound
		}
		if !bet.EndDate.After(now) || bet.IsResolved {
			return ErrBetClosed
		}

		existing, err := s.placementRepo.FindByUserAndBet(ctx, userID, betID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyPlaced
		}

		if amount < bet.MinStake || amount > bet.MaxStake {
			return fmt.Errorf("%w: bet amount must be between %d and %d", ErrStakeOutOfRange, bet.MinStake, bet.MaxStake)
		}

		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.Balance < amount {
			return ErrInsufficientBalance
		}

		// The daily counter resets on the first spend of a new calendar
		// day. The reset only reaches the database on the success path
		// below, together with the rest of the settlement.
		dailySpent := user.DailySpent
		if user.LastSpendDate == nil || !sameCalendarDay(*user.LastSpendDate, now) {
			dailySpent = 0
		}
		if dailySpent+amount > domain.DailyZestLimit {
			return fmt.Errorf("%w: you can bet %d more today", ErrDailyLimitExceeded, domain.DailyZestLimit-dailySpent)
		}

		if prediction == "" {
			return ErrPredictionRequired
		}

		platformFee := amount * feePercent / 100
		charityDonation := platformFee * charityPercent / 100
		netToPool := amount - platformFee

		placement, err = s.placementRepo.Create(ctx, &domain.BetPlacement{
			UserID:          userID,
			BetID:           betID,
			Amount:          amount,
			Prediction:      prediction,
			PlatformFee:     platformFee,
			CharityDonation: charityDonation,
		})
		if err != nil {
			// A concurrent double-submit loses the race on the
			// (user, bet) unique constraint.
			if errors.Is(err, pg.ErrUniqueViolation) {
				return ErrAlreadyPlaced
			}
			return err
		}

		newBalance = user.Balance - amount
		if err := s.userRepo.UpdateSpending(ctx, userID, newBalance, dailySpent+amount, startOfDay(now)); err != nil {
			return err
		}
		if err := s.betRepo.AddToPool(ctx, betID, netToPool); err != nil {
			return err
		}
		if _, err := s.txRepo.Create(ctx, &domain.Transaction{
			UserID:       userID,
			Amount:       -amount,
			Kind:         domain.TxStake,
			Description:  fmt.Sprintf("Bet on %s", bet.Title),
			RelatedBetID: &bet.ID,
		}); err != nil {
			return err
		}

		// The donation is carved out of the platform fee for bookkeeping
		// and credited to the featured project on top of it; the pool
		// still receives the full amount - fee.
		if charityDonation > 0 {
			project, err := s.projectRepo.FindFeatured(ctx)
			if err != nil {
				return err
			}
			if project != nil {
				if err := s.projectRepo.AddAmount(ctx, project.ID, charityDonation); err != nil {
					return err
				}
			}
		}

		completedMission, err = s.missions.CompleteByTitle(ctx, userID, firstBetMissionFragment)
		if err != nil {
			return err
		}
		if completedMission != nil {
			newBalance += completedMission.Reward
		}

		return s.userRepo.UpdatePrefs(ctx, userID, user.Prefs.Blend(bet.Scores, prefAlpha))
	})
	if err != nil {
		return nil, 0, err
	}

	if completedMission != nil {
		s.notifier.Notify(ctx, &domain.Notification{
			UserID: userID,
			Title:  "Mission Completed!",
			Kind:   domain.NotifyMissionComplete,
			Message: fmt.Sprintf("You completed the mission %q and earned %d Zest!",
				completedMission.Title, completedMission.Reward),
		})
	}

	zap.L().Info("bet placed",
		zap.Int("user_id", userID), zap.Int("bet_id", betID), zap.Int64("amount", amount))
	return placement, newBalance, nil
}

func (s *Service) CreateBet(ctx context.Context, bet *domain.Bet) (*domain.Bet, error) {
	if bet.MinStake <= 0 {
		bet.MinStake = 10
	}
	if bet.MaxStake <= 0 {
		bet.MaxStake = 1000
	}
	created, err := s.betRepo.Create(ctx, bet)
	if err != nil {
		zap.L().Error("can't create bet", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetBet(ctx context.Context, betID int) (*domain.Bet, error) {
	bet, err := s.betRepo.FindByID(ctx, betID)
	if err != nil {
		return nil, err
	}
	if bet == nil {
		return nil, ErrBetNotFound
	}
	return bet, nil
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.Bet, error) {
	return s.betRepo.FindOpen(ctx)
}

func (s *Service) ListEnded(ctx context.Context) ([]domain.Bet, error) {
	return s.betRepo.FindEnded(ctx)
}

func (s *Service) ToggleLike(ctx context.Context, betID, userID int) (bool, error) {
	bet, err := s.betRepo.FindByID(ctx, betID)
	if err != nil {
		return false, err
	}
	if bet == nil {
		return false, ErrBetNotFound
	}
	return s.betRepo.ToggleLike(ctx, betID, userID)
}

func (s *Service) ListPlacements(ctx context.Context, userID int) ([]domain.BetPlacement, error) {
	return s.placementRepo.FindByUser(ctx, userID)
}

// ResolveBet stamps the winning prediction once, marks every placement's
// winner flag, and distributes the pool to winners proportionally to their
// stakes. Losing pools with no winner stay with the platform.
func (s *Service) ResolveBet(ctx context.Context, userID, betID int, winningPrediction string) error {
	if winningPrediction == "" {
		return ErrPredictionRequired
	}

	var (
		bet        *domain.Bet
		placements []domain.BetPlacement
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		bet, err = s.betRepo.FindByID(ctx, betID)
		if err != nil {
			return err
		}
		if bet == nil {
			return ErrBetNotFound
		}
		if bet.CreatorID != userID {
			return ErrNotCreator
		}

		resolved, err := s.betRepo.Resolve(ctx, betID, winningPrediction)
		if err != nil {
			return err
		}
		if !resolved {
			return ErrBetResolved
		}

		if err := s.placementRepo.MarkWinners(ctx, betID, winningPrediction); err != nil {
			return err
		}

		placements, err = s.placementRepo.FindByBet(ctx, betID)
		if err != nil {
			return err
		}

		var totalWinnerStake int64
		for _, p := range placements {
			if p.Prediction == winningPrediction {
				totalWinnerStake += p.Amount
			}
		}
		if totalWinnerStake == 0 {
			return nil
		}

		for _, p := range placements {
			if p.Prediction != winningPrediction {
				continue
			}
			payout := bet.TotalPool * p.Amount / totalWinnerStake
			if payout == 0 {
				continue
			}
			if _, err := s.userRepo.UpdateBalance(ctx, p.UserID, payout); err != nil {
				return err
			}
			if err := s.userRepo.AddPoints(ctx, p.UserID, payout); err != nil {
				return err
			}
			if _, err := s.txRepo.Create(ctx, &domain.Transaction{
				UserID:       p.UserID,
				Amount:       payout,
				Kind:         domain.TxWin,
				Description:  fmt.Sprintf("Won bet: %s", bet.Title),
				RelatedBetID: &bet.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range placements {
		won := p.Prediction == winningPrediction
		message := fmt.Sprintf("The bet %q was resolved. Winning prediction: %s.", bet.Title, winningPrediction)
		if won {
			message = fmt.Sprintf("You won the bet %q!", bet.Title)
		}
		s.notifier.Notify(ctx, &domain.Notification{
			UserID:       p.UserID,
			Title:        "Bet Resolved",
			Message:      message,
			Kind:         domain.NotifyBetResult,
			RelatedBetID: &bet.ID,
		})
	}

	zap.L().Info("bet resolved", zap.Int("bet_id", betID), zap.String("winning_prediction", winningPrediction))
	return nil
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

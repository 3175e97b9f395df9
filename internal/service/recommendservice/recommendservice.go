package recommendservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/zestbet/zestbet/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=recommendservice.go -destination=mocks.go -package=recommendservice

type RecommendationRepo interface {
	Create(ctx context.Context, rec *domain.Recommendation) (bool, error)
	FindActive(ctx context.Context, userID int, kind string, limit int, now time.Time) ([]domain.Recommendation, error)
	MarkShown(ctx context.Context, recID, userID int) (bool, error)
	MarkClicked(ctx context.Context, recID, userID int) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type BetRepo interface {
	FindOpenUnplacedByUser(ctx context.Context, userID int) ([]domain.Bet, error)
}

type MissionRepo interface {
	FindOpenByUser(ctx context.Context, userID int) ([]domain.Mission, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindIDsExcluding(ctx context.Context, excluded []int) ([]int, error)
}

type FriendshipRepo interface {
	FriendIDs(ctx context.Context, userID int) ([]int, error)
}

const (
	// recommendations go stale after a week
	recommendationTTL = 7 * 24 * time.Hour

	missionScore = 0.9
	friendScore  = 0.8

	defaultLimit = 5
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

type Service struct {
	recRepo        RecommendationRepo
	betRepo        BetRepo
	missionRepo    MissionRepo
	userRepo       UserRepo
	friendshipRepo FriendshipRepo
	now            func() time.Time
	shuffle        func(n int, swap func(i, j int))
}

func New(
	recRepo RecommendationRepo,
	betRepo BetRepo,
	missionRepo MissionRepo,
	userRepo UserRepo,
	friendshipRepo FriendshipRepo,
) *Service {
	return &Service{
		recRepo:        recRepo,
		betRepo:        betRepo,
		missionRepo:    missionRepo,
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		now:            time.Now,
		shuffle:        rand.Shuffle,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithShuffle overrides the sampling order. Tests pin it to the identity.
func (s *Service) WithShuffle(shuffle func(n int, swap func(i, j int))) *Service {
	s.shuffle = shuffle
	return s
}

// GetRecommendations serves the user's active recommendations of a kind,
// topping the set up to the limit when previous ones expired or ran out.
func (s *Service) GetRecommendations(ctx context.Context, userID int, kind string, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	now := s.now()

	active, err := s.recRepo.FindActive(ctx, userID, kind, limit, now)
	if err != nil {
		return nil, err
	}
	if len(active) >= limit {
		return active, nil
	}

	if err := s.generate(ctx, userID, kind, limit-len(active)); err != nil {
		return nil, err
	}
	return s.recRepo.FindActive(ctx, userID, kind, limit, now)
}

func (s *Service) generate(ctx context.Context, userID int, kind string, count int) error {
	switch kind {
	case domain.RecommendBet:
		return s.generateBets(ctx, userID, count)
	case domain.RecommendMission:
		return s.generateMissions(ctx, userID, count)
	case domain.RecommendFriend:
		return s.generateFriends(ctx, userID, count)
	default:
		return fmt.Errorf("unknown recommendation kind %q", kind)
	}
}

// generateBets ranks the open bets the user has not placed on by the dot
// product of the user's preference vector and the bet's trait scores.
func (s *Service) generateBets(ctx context.Context, userID int, count int) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	bets, err := s.betRepo.FindOpenUnplacedByUser(ctx, userID)
	if err != nil {
		return err
	}

	type scored struct {
		bet   domain.Bet
		score float64
	}
	ranked := make([]scored, 0, len(bets))
	for _, bet := range bets {
		ranked = append(ranked, scored{bet: bet, score: user.Prefs.Dot(bet.Scores)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	expiresAt := s.now().Add(recommendationTTL)
	created := 0
	for _, r := range ranked {
		if created >= count {
			break
		}
		betID := r.bet.ID
		inserted, err := s.recRepo.Create(ctx, &domain.Recommendation{
			UserID:       userID,
			Kind:         domain.RecommendBet,
			Score:        r.score,
			Reason:       fmt.Sprintf("Matches your betting style: %s", r.bet.Title),
			RelatedBetID: &betID,
			ExpiresAt:    expiresAt,
		})
		if err != nil {
			return err
		}
		if inserted {
			created++
		}
	}
	return nil
}

func (s *Service) generateMissions(ctx context.Context, userID int, count int) error {
	missions, err := s.missionRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		return err
	}
	s.shuffle(len(missions), func(i, j int) {
		missions[i], missions[j] = missions[j], missions[i]
	})

	expiresAt := s.now().Add(recommendationTTL)
	created := 0
	for _, mission := range missions {
		if created >= count {
			break
		}
		missionID := mission.ID
		inserted, err := s.recRepo.Create(ctx, &domain.Recommendation{
			UserID:           userID,
			Kind:             domain.RecommendMission,
			Score:            missionScore,
			Reason:           fmt.Sprintf("Earn %d Zest: %s", mission.Reward, mission.Title),
			RelatedMissionID: &missionID,
			ExpiresAt:        expiresAt,
		})
		if err != nil {
			return err
		}
		if inserted {
			created++
		}
	}
	return nil
}

func (s *Service) generateFriends(ctx context.Context, userID int, count int) error {
	friendIDs, err := s.friendshipRepo.FriendIDs(ctx, userID)
	if err != nil {
		return err
	}
	candidates, err := s.userRepo.FindIDsExcluding(ctx, append(friendIDs, userID))
	if err != nil {
		return err
	}
	s.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	expiresAt := s.now().Add(recommendationTTL)
	created := 0
	for _, candidateID := range candidates {
		if created >= count {
			break
		}
		candidateID := candidateID
		inserted, err := s.recRepo.Create(ctx, &domain.Recommendation{
			UserID:        userID,
			Kind:          domain.RecommendFriend,
			Score:         friendScore,
			Reason:        "People you might want to bet with",
			RelatedUserID: &candidateID,
			ExpiresAt:     expiresAt,
		})
		if err != nil {
			return err
		}
		if inserted {
			created++
		}
	}
	return nil
}

// PersonalizedBets ranks every open bet the user can still join by
// preference match, without persisting anything.
func (s *Service) PersonalizedBets(ctx context.Context, userID int, limit int) ([]domain.Bet, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	bets, err := s.betRepo.FindOpenUnplacedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(bets, func(i, j int) bool {
		return user.Prefs.Dot(bets[i].Scores) > user.Prefs.Dot(bets[j].Scores)
	})
	if len(bets) > limit {
		bets = bets[:limit]
	}
	return bets, nil
}

func (s *Service) MarkShown(ctx context.Context, recID, userID int) error {
	ok, err := s.recRepo.MarkShown(ctx, recID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecommendationNotFound
	}
	return nil
}

func (s *Service) MarkClicked(ctx context.Context, recID, userID int) error {
	ok, err := s.recRepo.MarkClicked(ctx, recID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecommendationNotFound
	}
	return nil
}

// RefreshUser regenerates all three recommendation kinds for one user.
// The background refresher calls it for recently active accounts.
func (s *Service) RefreshUser(ctx context.Context, userID int) error {
	for _, kind := range []string{domain.RecommendBet, domain.RecommendMission, domain.RecommendFriend} {
		if _, err := s.GetRecommendations(ctx, userID, kind, defaultLimit); err != nil {
			return fmt.Errorf("refresh %s recommendations: %w", kind, err)
		}
	}
	return nil
}

// PruneExpired drops recommendations past their TTL.
func (s *Service) PruneExpired(ctx context.Context) error {
	deleted, err := s.recRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return err
	}
	if deleted > 0 {
		zap.L().Info("expired recommendations pruned", zap.Int64("count", deleted))
	}
	return nil
}

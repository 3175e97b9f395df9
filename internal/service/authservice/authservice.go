package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mocks.go -package=authservice

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type MissionSeeder interface {
	SeedForUser(ctx context.Context, userID int) error
}

type HashService interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

type JWTService interface {
	GenerateJWT(userID int, expirationTime time.Time) (string, error)
}

const invitePrefix = "ZEST"

var (
	ErrUserAlreadyExists  = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	userRepo   UserRepo
	missions   MissionSeeder
	hasher     HashService
	jwtService JWTService
	tokenTTL   time.Duration
	txManager  pg.TXManager
}

func New(
	userRepo UserRepo,
	missions MissionSeeder,
	hasher HashService,
	jwtService JWTService,
	tokenTTL time.Duration,
	txManager pg.TXManager,
) *Service {
	return &Service{
		userRepo:   userRepo,
		missions:   missions,
		hasher:     hasher,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
		txManager:  txManager,
	}
}

// Register creates the account with the starting balance, a unique invite
// code and the seeded onboarding missions.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	var user *domain.User

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrUserAlreadyExists
		}

		passwordHash, err := s.hasher.HashPassword(password)
		if err != nil {
			return err
		}
		inviteCode, err := generateInviteCode()
		if err != nil {
			return err
		}

		user, err = s.userRepo.Create(ctx, &domain.User{
			Username:     username,
			PasswordHash: passwordHash,
			Balance:      domain.StartingBalance,
			InviteCode:   inviteCode,
			Prefs:        domain.DefaultVector(),
		})
		if err != nil {
			if errors.Is(err, pg.ErrUniqueViolation) {
				return ErrUserAlreadyExists
			}
			return err
		}
		return s.missions.SeedForUser(ctx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("user registered", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Me returns the profile of an authenticated user.
func (s *Service) Me(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	return s.jwtService.GenerateJWT(userID, time.Now().Add(s.tokenTTL))
}

func generateInviteCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("can't generate invite code: %w", err)
	}
	return invitePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}

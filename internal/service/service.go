package service

import (
	"github.com/zestbet/zestbet/internal/config"
	"github.com/zestbet/zestbet/internal/pg"
	"github.com/zestbet/zestbet/internal/repo"
	"github.com/zestbet/zestbet/internal/service/authservice"
	"github.com/zestbet/zestbet/internal/service/betservice"
	"github.com/zestbet/zestbet/internal/service/inviteservice"
	"github.com/zestbet/zestbet/internal/service/missionservice"
	"github.com/zestbet/zestbet/internal/service/notifyservice"
	"github.com/zestbet/zestbet/internal/service/projectservice"
	"github.com/zestbet/zestbet/internal/service/recommendservice"
	"github.com/zestbet/zestbet/internal/service/socialservice"
	"github.com/zestbet/zestbet/internal/service/walletservice"
	"github.com/zestbet/zestbet/pkg/auth"
)

type Services struct {
	AuthService      *authservice.Service
	BetService       *betservice.Service
	WalletService    *walletservice.Service
	MissionService   *missionservice.Service
	InviteService    *inviteservice.Service
	RecommendService *recommendservice.Service
	SocialService    *socialservice.Service
	ProjectService   *projectservice.Service
	NotifyService    *notifyservice.Service
	JWTService       *auth.JWTService
}

func New(repos *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	hasher := &auth.HashService{}

	notifySvc := notifyservice.New(repos.NotificationRepo)
	missionSvc := missionservice.New(repos.MissionRepo, repos.UserRepo, repos.TransactionRepo)

	return &Services{
		AuthService: authservice.New(
			repos.UserRepo, missionSvc, hasher, jwtService, cfg.TokenTTL, txManager),
		BetService: betservice.New(
			repos.UserRepo, repos.BetRepo, repos.PlacementRepo, repos.TransactionRepo,
			repos.ProjectRepo, missionSvc, notifySvc, txManager),
		WalletService:  walletservice.New(repos.UserRepo, repos.TransactionRepo, txManager),
		MissionService: missionSvc,
		InviteService: inviteservice.New(
			repos.UserRepo, repos.TransactionRepo, missionSvc, notifySvc, txManager),
		RecommendService: recommendservice.New(
			repos.RecommendationRepo, repos.BetRepo, repos.MissionRepo,
			repos.UserRepo, repos.FriendshipRepo),
		SocialService: socialservice.New(
			repos.SocialRepo, repos.FriendshipRepo, repos.UserRepo, notifySvc),
		ProjectService: projectservice.New(repos.ProjectRepo),
		NotifyService:  notifySvc,
		JWTService:     jwtService,
	}
}

package repo

import (
	"github.com/zestbet/zestbet/internal/pg"
	betrepo "github.com/zestbet/zestbet/internal/repo/bet-repo"
	friendshiprepo "github.com/zestbet/zestbet/internal/repo/friendship-repo"
	missionrepo "github.com/zestbet/zestbet/internal/repo/mission-repo"
	notificationrepo "github.com/zestbet/zestbet/internal/repo/notification-repo"
	placementrepo "github.com/zestbet/zestbet/internal/repo/placement-repo"
	projectrepo "github.com/zestbet/zestbet/internal/repo/project-repo"
	recommendationrepo "github.com/zestbet/zestbet/internal/repo/recommendation-repo"
	socialrepo "github.com/zestbet/zestbet/internal/repo/social-repo"
	transactionrepo "github.com/zestbet/zestbet/internal/repo/transaction-repo"
	userrepo "github.com/zestbet/zestbet/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo           *userrepo.Repository
	BetRepo            *betrepo.Repository
	PlacementRepo      *placementrepo.Repository
	TransactionRepo    *transactionrepo.Repository
	MissionRepo        *missionrepo.Repository
	ProjectRepo        *projectrepo.Repository
	NotificationRepo   *notificationrepo.Repository
	FriendshipRepo     *friendshiprepo.Repository
	SocialRepo         *socialrepo.Repository
	RecommendationRepo *recommendationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:           userrepo.New(conn),
		BetRepo:            betrepo.New(conn),
		PlacementRepo:      placementrepo.New(conn),
		TransactionRepo:    transactionrepo.New(conn),
		MissionRepo:        missionrepo.New(conn),
		ProjectRepo:        projectrepo.New(conn),
		NotificationRepo:   notificationrepo.New(conn),
		FriendshipRepo:     friendshiprepo.New(conn),
		SocialRepo:         socialrepo.New(conn),
		RecommendationRepo: recommendationrepo.New(conn),
	}
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/zestbet/zestbet/docs"
	authhandlers "github.com/zestbet/zestbet/internal/handlers/auth"
	betshandlers "github.com/zestbet/zestbet/internal/handlers/bets"
	invitehandlers "github.com/zestbet/zestbet/internal/handlers/invite"
	missionshandlers "github.com/zestbet/zestbet/internal/handlers/missions"
	notificationshandlers "github.com/zestbet/zestbet/internal/handlers/notifications"
	projectshandlers "github.com/zestbet/zestbet/internal/handlers/projects"
	recommendationshandlers "github.com/zestbet/zestbet/internal/handlers/recommendations"
	socialhandlers "github.com/zestbet/zestbet/internal/handlers/social"
	wallethandlers "github.com/zestbet/zestbet/internal/handlers/wallet"
	"github.com/zestbet/zestbet/internal/service"
	"github.com/zestbet/zestbet/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type BetHandler interface {
	CreateBet(w http.ResponseWriter, r *http.Request)
	ListOpen(w http.ResponseWriter, r *http.Request)
	ListEnded(w http.ResponseWriter, r *http.Request)
	GetBet(w http.ResponseWriter, r *http.Request)
	PlaceBet(w http.ResponseWriter, r *http.Request)
	ResolveBet(w http.ResponseWriter, r *http.Request)
	ToggleLike(w http.ResponseWriter, r *http.Request)
	ListPlacements(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	DailyZest(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
}

type MissionHandler interface {
	ListMissions(w http.ResponseWriter, r *http.Request)
}

type InviteHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
}

type RecommendationHandler interface {
	GetRecommendations(w http.ResponseWriter, r *http.Request)
	PersonalizedBets(w http.ResponseWriter, r *http.Request)
	MarkShown(w http.ResponseWriter, r *http.Request)
	MarkClicked(w http.ResponseWriter, r *http.Request)
}

type SocialHandler interface {
	CreatePost(w http.ResponseWriter, r *http.Request)
	ListPosts(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
	ListComments(w http.ResponseWriter, r *http.Request)
	ToggleLike(w http.ResponseWriter, r *http.Request)
	RequestFriend(w http.ResponseWriter, r *http.Request)
	RespondFriend(w http.ResponseWriter, r *http.Request)
	ListFriends(w http.ResponseWriter, r *http.Request)
	ListFriendships(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type ProjectHandler interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	Featured(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler           AuthHandler
	BetHandler            BetHandler
	WalletHandler         WalletHandler
	MissionHandler        MissionHandler
	InviteHandler         InviteHandler
	RecommendationHandler RecommendationHandler
	SocialHandler         SocialHandler
	ProjectHandler        ProjectHandler
	NotificationHandler   NotificationHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:           authhandlers.New(s.AuthService),
		BetHandler:            betshandlers.New(s.BetService),
		WalletHandler:         wallethandlers.New(s.WalletService),
		MissionHandler:        missionshandlers.New(s.MissionService),
		InviteHandler:         invitehandlers.New(s.InviteService),
		RecommendationHandler: recommendationshandlers.New(s.RecommendService),
		SocialHandler:         socialhandlers.New(s.SocialService),
		ProjectHandler:        projectshandlers.New(s.ProjectService),
		NotificationHandler:   notificationshandlers.New(s.NotifyService),
		jwtService:            s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/user/me", h.AuthHandler.Me)
			r.Route("/bets", func(r chi.Router) {
				r.Post("/", h.BetHandler.CreateBet)
				r.Get("/", h.BetHandler.ListOpen)
				r.Get("/ended", h.BetHandler.ListEnded)
				r.Get("/placements", h.BetHandler.ListPlacements)
				r.Get("/{id}", h.BetHandler.GetBet)
				r.Post("/{id}/place", h.BetHandler.PlaceBet)
				r.Post("/{id}/resolve", h.BetHandler.ResolveBet)
				r.Post("/{id}/like", h.BetHandler.ToggleLike)
			})
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/daily", h.WalletHandler.DailyZest)
				r.Post("/purchase", h.WalletHandler.Purchase)
			})
			r.Get("/missions", h.MissionHandler.ListMissions)
			r.Post("/invites/redeem", h.InviteHandler.Redeem)
			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/", h.RecommendationHandler.GetRecommendations)
				r.Get("/bets", h.RecommendationHandler.PersonalizedBets)
				r.Post("/{id}/shown", h.RecommendationHandler.MarkShown)
				r.Post("/{id}/clicked", h.RecommendationHandler.MarkClicked)
			})
			r.Route("/social/posts", func(r chi.Router) {
				r.Post("/", h.SocialHandler.CreatePost)
				r.Get("/", h.SocialHandler.ListPosts)
				r.Post("/{id}/comments", h.SocialHandler.AddComment)
				r.Get("/{id}/comments", h.SocialHandler.ListComments)
				r.Post("/{id}/like", h.SocialHandler.ToggleLike)
			})
			r.Route("/friends", func(r chi.Router) {
				r.Get("/", h.SocialHandler.ListFriends)
				r.Get("/requests", h.SocialHandler.ListFriendships)
				r.Post("/requests", h.SocialHandler.RequestFriend)
				r.Post("/requests/{id}", h.SocialHandler.RespondFriend)
			})
			r.Get("/leaderboard", h.SocialHandler.Leaderboard)
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.ProjectHandler.ListProjects)
				r.Get("/featured", h.ProjectHandler.Featured)
			})
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Post("/read-all", h.NotificationHandler.MarkAllRead)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})
		})
	})

	return r
}

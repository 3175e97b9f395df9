package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	_ "github.com/zestbet/zestbet/docs"
	"github.com/zestbet/zestbet/internal/service"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBetHandler := NewMockBetHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockMissionHandler := NewMockMissionHandler(ctrl)
	mockInviteHandler := NewMockInviteHandler(ctrl)
	mockRecommendationHandler := NewMockRecommendationHandler(ctrl)
	mockSocialHandler := NewMockSocialHandler(ctrl)
	mockProjectHandler := NewMockProjectHandler(ctrl)
	mockNotificationHandler := NewMockNotificationHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:           mockAuthHandler,
		BetHandler:            mockBetHandler,
		WalletHandler:         mockWalletHandler,
		MissionHandler:        mockMissionHandler,
		InviteHandler:         mockInviteHandler,
		RecommendationHandler: mockRecommendationHandler,
		SocialHandler:         mockSocialHandler,
		ProjectHandler:        mockProjectHandler,
		NotificationHandler:   mockNotificationHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/me", http.StatusUnauthorized},
		{"POST", "/api/bets", http.StatusUnauthorized},
		{"GET", "/api/bets", http.StatusUnauthorized},
		{"GET", "/api/bets/ended", http.StatusUnauthorized},
		{"POST", "/api/bets/7/place", http.StatusUnauthorized},
		{"POST", "/api/bets/7/resolve", http.StatusUnauthorized},
		{"GET", "/api/wallet/balance", http.StatusUnauthorized},
		{"POST", "/api/wallet/daily", http.StatusUnauthorized},
		{"GET", "/api/missions", http.StatusUnauthorized},
		{"POST", "/api/invites/redeem", http.StatusUnauthorized},
		{"GET", "/api/recommendations", http.StatusUnauthorized},
		{"GET", "/api/recommendations/bets", http.StatusUnauthorized},
		{"POST", "/api/social/posts", http.StatusUnauthorized},
		{"GET", "/api/friends", http.StatusUnauthorized},
		{"GET", "/api/leaderboard", http.StatusUnauthorized},
		{"GET", "/api/projects", http.StatusUnauthorized},
		{"GET", "/api/notifications", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

package missions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*MissionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListMissionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	completedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.MissionResponseDTO
	}{
		{
			name: "Merges templates with progress",
			prepareMock: func() {
				service.EXPECT().
					ListForUser(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(
						[]domain.Mission{
							{ID: 1, Title: "Place your first bet", Reward: 50},
							{ID: 2, Title: "Invite a friend", Reward: 50},
						},
						[]domain.UserMission{
							{UserID: 1, MissionID: 1, Status: domain.MissionCompleted, CompletedAt: &completedAt},
							{UserID: 1, MissionID: 2, Status: domain.MissionOpen},
						},
						nil,
					)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.MissionResponseDTO{
				{ID: 1, Title: "Place your first bet", Reward: 50, Status: domain.MissionCompleted, CompletedAt: &completedAt},
				{ID: 2, Title: "Invite a friend", Reward: 50, Status: domain.MissionOpen},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					ListForUser(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(nil, nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/missions", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.ListMissions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MissionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/notifyservice"
	"github.com/zestbet/zestbet/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target string, urlParams map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	rctx := chi.NewRouteContext()
	for k, v := range urlParams {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	betID := 7

	service.EXPECT().
		List(gomock.Any(), 1).
		Return([]domain.Notification{{
			ID:           21,
			UserID:       1,
			Title:        "Bet Resolved",
			Message:      `You won the bet "Will it rain tomorrow?"!`,
			Kind:         domain.NotifyBetResult,
			RelatedBetID: &betID,
			CreatedAt:    createdAt,
		}}, nil)

	r := newRequest(http.MethodGet, "/notifications", nil)
	w := httptest.NewRecorder()

	handler.List(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.NotificationResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "Bet Resolved", body[0].Title)
	assert.False(t, body[0].IsRead)
}

func TestMarkReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		urlParams     map[string]string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful mark",
			urlParams: map[string]string{"id": "21"},
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), 21, 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Unknown notification",
			urlParams: map[string]string{"id": "21"},
			prepareMock: func() {
				service.EXPECT().
					MarkRead(gomock.Any(), 21, 1).
					Return(notifyservice.ErrNotificationNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "notification not found",
		},
		{
			name:          "Invalid id",
			urlParams:     map[string]string{"id": "nope"},
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid notification id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/notifications/21/read", tt.urlParams)
			w := httptest.NewRecorder()

			handler.MarkRead(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestMarkAllReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().MarkAllRead(gomock.Any(), 1).Return(nil)

	r := newRequest(http.MethodPost, "/notifications/read-all", nil)
	w := httptest.NewRecorder()

	handler.MarkAllRead(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All notifications marked as read")
}

package bets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/betservice"
	"github.com/zestbet/zestbet/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BetHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, urlParams map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	rctx := chi.NewRouteContext()
	for k, v := range urlParams {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestCreateBetHandler(t *testing.T) {
	handler, service := NewMock(t)
	endDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"title":"Will it rain tomorrow?","min_stake":10,"max_stake":100,"end_date":"2025-07-01T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBet(gomock.Any(), gomock.Any()).
					Return(&domain.Bet{
						ID:        7,
						Title:     "Will it rain tomorrow?",
						CreatorID: 1,
						MinStake:  10,
						MaxStake:  100,
						EndDate:   endDate,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing title",
			body:          `{"min_stake":10}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Title is required",
		},
		{
			name:          "Invalid request body",
			body:          `{"title":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"title":"Will it rain tomorrow?"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateBet(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/bets", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreateBet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestPlaceBetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		urlParams     map[string]string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful placement",
			body:      `{"amount":100,"prediction":"yes"}`,
			urlParams: map[string]string{"id": "7"},
			prepareMock: func() {
				service.EXPECT().
					PlaceBet(gomock.Any(), 1, 7, int64(100), "yes").
					Return(&domain.BetPlacement{ID: 3, BetID: 7, Amount: 100}, int64(400), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid bet id",
			body:          `{"amount":100,"prediction":"yes"}`,
			urlParams:     map[string]string{"id": "seven"},
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid bet id",
		},
		{
			name:      "Unknown bet",
			body:      `{"amount":100,"prediction":"yes"}`,
			urlParams: map[string]string{"id": "7"},
			prepareMock: func() {
				service.EXPECT().
					PlaceBet(gomock.Any(), 1, 7, int64(100), "yes").
					Return(nil, int64(0), betservice.ErrBetNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "bet not found",
		},
		{
			name:      "Bet closed",
			body:      `{"amount":100,"prediction":"yes"}`,
			urlParams: map[string]string{"id": "7"},
			prepareMock: func() {
				service.EXPECT().
					PlaceBet(gomock.Any(), 1, 7, int64(100), "yes").
					Return(nil, int64(0), betservice.ErrBetClosed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "this bet has ended",
		},
		{
			name:      "Stake out of range",
			body:      `{"amount":5,"prediction":"yes"}`,
			urlParams: map[string]string{"id": "7"},
			prepareMock: func() {
				service.EXPECT().
					PlaceBet(gomock.Any(), 1, 7, int64(5), "yes").
					Return(nil, int64(0), betservice.ErrStakeOutOfRange)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "Insufficient balance",
			body:      `{"amount":100,"prediction":"yes"}`,
			urlParams: map[string]string{"id": "7"},
			prepareMock: func() {
				service.EXPECT().
					PlaceBet(gomock.Any(), 1, 7, int64(100), "yes").
					Return(nil, int64(0), betservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:      "Daily limit exceeded",
			body:      `{"amount":100,"prediction":"yes"}`,
			urlParams: map[string]string{"id": "7"},
			prepareMock: func() {
				service.EXPECT().
					PlaceBet(gomock.Any(), 1, 7, int64(100), "yes").
					Return(nil, int64(0), betservice.ErrDailyLimitExceeded)
			},
			expectedCode: http.StatusTooManyRequests,
		},
		{
			name:      "Internal server error",
			body:      `{"amount":100,"prediction":"yes"}`,
			urlParams: map[string]string{"id": "7"},
			prepareMock: func() {
				service.EXPECT().
					PlaceBet(gomock.Any(), 1, 7, int64(100), "yes").
					Return(nil, int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/bets/7/place", tt.body, tt.urlParams)
			w := httptest.NewRecorder()

			handler.PlaceBet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PlaceBetResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 3, body.PlacementID)
				assert.Equal(t, int64(400), body.Balance)
			}
		})
	}
}

func TestResolveBetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful resolution",
			body: `{"winning_prediction":"yes"}`,
			prepareMock: func() {
				service.EXPECT().
					ResolveBet(gomock.Any(), 1, 7, "yes").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the creator",
			body: `{"winning_prediction":"yes"}`,
			prepareMock: func() {
				service.EXPECT().
					ResolveBet(gomock.Any(), 1, 7, "yes").
					Return(betservice.ErrNotCreator)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Already resolved",
			body: `{"winning_prediction":"yes"}`,
			prepareMock: func() {
				service.EXPECT().
					ResolveBet(gomock.Any(), 1, 7, "yes").
					Return(betservice.ErrBetResolved)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Empty winning prediction",
			body: `{"winning_prediction":""}`,
			prepareMock: func() {
				service.EXPECT().
					ResolveBet(gomock.Any(), 1, 7, "").
					Return(betservice.ErrPredictionRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/bets/7/resolve", tt.body, map[string]string{"id": "7"})
			w := httptest.NewRecorder()

			handler.ResolveBet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListOpenHandler(t *testing.T) {
	handler, service := NewMock(t)
	endDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	service.EXPECT().
		ListOpen(gomock.Any()).
		Return([]domain.Bet{{ID: 7, Title: "Will it rain tomorrow?", EndDate: endDate, TotalPool: 90}}, nil)

	r := newRequest(http.MethodGet, "/bets", "", nil)
	w := httptest.NewRecorder()

	handler.ListOpen(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.BetResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, int64(90), body[0].TotalPool)
}

func TestToggleLikeHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ToggleLike(gomock.Any(), 7, 1).Return(true, nil)

	r := newRequest(http.MethodPost, "/bets/7/like", "", map[string]string{"id": "7"})
	w := httptest.NewRecorder()

	handler.ToggleLike(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)
}

package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/walletservice"
	"github.com/zestbet/zestbet/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(&domain.User{ID: 1, Balance: 400, Points: 120, InviteCode: "ZEST1A2B3C"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Balance:    400,
				Points:     120,
				InviteCode: "ZEST1A2B3C",
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDailyZestHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Full grant",
			body: `{"amount":50}`,
			prepareMock: func() {
				service.EXPECT().
					GrantDaily(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, int64(50)).
					Return(int64(550), int64(50), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().
					GrantDaily(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, int64(0)).
					Return(int64(0), int64(0), walletservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Allowance used up",
			body: `{"amount":50}`,
			prepareMock: func() {
				service.EXPECT().
					GrantDaily(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, int64(50)).
					Return(int64(0), int64(0), walletservice.ErrDailyLimitExceeded)
			},
			expectedCode:  http.StatusTooManyRequests,
			expectedError: "daily",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/wallet/daily", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.DailyZest(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.DailyZestResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(50), body.Granted)
				assert.Equal(t, int64(550), body.Balance)
			}
		})
	}
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful purchase",
			body: `{"amount":200,"voucher":"2404815702"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, int64(200)).
					Return(int64(700), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Voucher fails the Luhn check",
			body:          `{"amount":200,"voucher":"1234567890"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid voucher code",
		},
		{
			name: "Non-positive amount",
			body: `{"amount":-5,"voucher":"2404815702"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, int64(-5)).
					Return(int64(0), walletservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/wallet/purchase", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Purchase(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

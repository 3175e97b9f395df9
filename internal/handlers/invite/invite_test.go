package invite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/inviteservice"
	"github.com/zestbet/zestbet/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*InviteHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRedeemHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful redemption",
			body: `{"code":"ZEST1A2B3C"}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "ZEST1A2B3C").
					Return(int64(550), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"code":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unknown code",
			body: `{"code":"ZESTXXXXXX"}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "ZESTXXXXXX").
					Return(int64(0), inviteservice.ErrInvalidCode)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "invalid invite code",
		},
		{
			name: "Own code",
			body: `{"code":"ZEST1A2B3C"}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "ZEST1A2B3C").
					Return(int64(0), inviteservice.ErrSelfReferral)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "your own invite code",
		},
		{
			name: "Second redemption",
			body: `{"code":"ZEST1A2B3C"}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "ZEST1A2B3C").
					Return(int64(0), inviteservice.ErrAlreadyRedeemed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already redeemed",
		},
		{
			name: "Internal server error",
			body: `{"code":"ZEST1A2B3C"}`,
			prepareMock: func() {
				service.EXPECT().
					Redeem(context.WithValue(context.Background(), auth.UserIDKey, 1), 1, "ZEST1A2B3C").
					Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/invites/redeem", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Redeem(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.RedeemInviteResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(550), body.Balance)
			}
		})
	}
}

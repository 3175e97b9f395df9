package social

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
	"github.com/zestbet/zestbet/internal/service/socialservice"
	"github.com/zestbet/zestbet/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SocialHandler, *MockService) {
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

func TestCreatePostHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"content":"won big today"}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePost(gomock.Any(), 1, "won big today").
					Return(&domain.SocialPost{ID: 5, UserID: 1, Content: "won big today", CreatedAt: createdAt}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Empty content",
			body: `{"content":""}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePost(gomock.Any(), 1, "").
					Return(nil, socialservice.ErrEmptyContent)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "content is required",
		},
		{
			name:          "Invalid request body",
			body:          `{"content":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/social/posts", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreatePost(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestAddCommentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful comment",
			body: `{"content":"nice"}`,
			prepareMock: func() {
				service.EXPECT().
					AddComment(gomock.Any(), 5, 1, "nice").
					Return(&domain.Comment{ID: 9, PostID: 5, UserID: 1, Content: "nice"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Post not found",
			body: `{"content":"nice"}`,
			prepareMock: func() {
				service.EXPECT().
					AddComment(gomock.Any(), 5, 1, "nice").
					Return(nil, socialservice.ErrPostNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "post not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/social/posts/5/comments", tt.body, map[string]string{"id": "5"})
			w := httptest.NewRecorder()

			handler.AddComment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRequestFriendHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful request",
			body: `{"addressee_id":2}`,
			prepareMock: func() {
				service.EXPECT().
					RequestFriend(gomock.Any(), 1, 2).
					Return(&domain.Friendship{ID: 3, RequesterID: 1, AddresseeID: 2, Status: domain.FriendshipPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Friending yourself",
			body: `{"addressee_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					RequestFriend(gomock.Any(), 1, 1).
					Return(nil, socialservice.ErrSelfFriendship)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "cannot friend yourself",
		},
		{
			name: "Unknown addressee",
			body: `{"addressee_id":99}`,
			prepareMock: func() {
				service.EXPECT().
					RequestFriend(gomock.Any(), 1, 99).
					Return(nil, socialservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
		{
			name: "Duplicate request",
			body: `{"addressee_id":2}`,
			prepareMock: func() {
				service.EXPECT().
					RequestFriend(gomock.Any(), 1, 2).
					Return(nil, socialservice.ErrAlreadyRequested)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already exists",
		},
		{
			name: "Internal server error",
			body: `{"addressee_id":2}`,
			prepareMock: func() {
				service.EXPECT().
					RequestFriend(gomock.Any(), 1, 2).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/friends/requests", tt.body, nil)
			w := httptest.NewRecorder()

			handler.RequestFriend(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRespondFriendHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accepted",
			body: `{"status":"accepted"}`,
			prepareMock: func() {
				service.EXPECT().
					RespondFriend(gomock.Any(), 1, 3, "accepted").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid reply",
			body: `{"status":"maybe"}`,
			prepareMock: func() {
				service.EXPECT().
					RespondFriend(gomock.Any(), 1, 3, "maybe").
					Return(socialservice.ErrInvalidFriendReply)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not the addressee",
			body: `{"status":"accepted"}`,
			prepareMock: func() {
				service.EXPECT().
					RespondFriend(gomock.Any(), 1, 3, "accepted").
					Return(socialservice.ErrNotAddressee)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Already handled",
			body: `{"status":"accepted"}`,
			prepareMock: func() {
				service.EXPECT().
					RespondFriend(gomock.Any(), 1, 3, "accepted").
					Return(socialservice.ErrRequestNotPending)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/friends/requests/3", tt.body, map[string]string{"id": "3"})
			w := httptest.NewRecorder()

			handler.RespondFriend(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestLeaderboardHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Leaderboard(gomock.Any(), 0).
		Return([]domain.User{
			{ID: 1, Username: "alice", Points: 900},
			{ID: 2, Username: "bob", Points: 500},
		}, nil)

	r := newRequest(http.MethodGet, "/leaderboard", "", nil)
	w := httptest.NewRecorder()

	handler.Leaderboard(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.LeaderboardEntryDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
	assert.Equal(t, "alice", body[0].Username)
	assert.Equal(t, int64(900), body[0].Points)
}

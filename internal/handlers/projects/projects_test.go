package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/projectservice"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ProjectHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListProjectsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ListProjects(context.Background()).
		Return([]domain.ImpactProject{
			{ID: 3, Name: "Clean Water Fund", Amount: 1200, Featured: true},
			{ID: 4, Name: "Tree Planting", Amount: 300},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/projects", nil)
	w := httptest.NewRecorder()

	handler.ListProjects(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.ProjectResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
	assert.Equal(t, "Clean Water Fund", body[0].Name)
	assert.True(t, body[0].Featured)
}

func TestFeaturedHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Featured project exists",
			prepareMock: func() {
				service.EXPECT().
					Featured(context.Background()).
					Return(&domain.ImpactProject{ID: 3, Name: "Clean Water Fund", Amount: 1200, Featured: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No featured project",
			prepareMock: func() {
				service.EXPECT().
					Featured(context.Background()).
					Return(nil, projectservice.ErrNoFeaturedProject)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "no featured project",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Featured(context.Background()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/projects/featured", nil)
			w := httptest.NewRecorder()

			handler.Featured(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

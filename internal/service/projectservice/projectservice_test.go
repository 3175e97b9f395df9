package projectservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockProjectRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockProjectRepo(ctrl)
	return New(repo), repo
}

func TestService_ListProjects(t *testing.T) {
	ctx := context.Background()
	svc, repo := NewMock(t)

	endDate := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	projects := []domain.ImpactProject{
		{ID: 1, Name: "Clean Water Fund", Amount: 1200, Featured: true, EndDate: &endDate},
		{ID: 2, Name: "Tree Planting", Amount: 300},
	}

	repo.EXPECT().FindAll(ctx).Return(projects, nil)
	got, err := svc.ListProjects(ctx)
	assert.NoError(t, err)
	assert.Equal(t, projects, got)

	repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))
	_, err = svc.ListProjects(ctx)
	assert.Error(t, err)
}

func TestService_Featured(t *testing.T) {
	ctx := context.Background()
	svc, repo := NewMock(t)

	featured := &domain.ImpactProject{ID: 1, Name: "Clean Water Fund", Amount: 1200, Featured: true}

	repo.EXPECT().FindFeatured(ctx).Return(featured, nil)
	got, err := svc.Featured(ctx)
	assert.NoError(t, err)
	assert.Equal(t, featured, got)

	repo.EXPECT().FindFeatured(ctx).Return(nil, nil)
	_, err = svc.Featured(ctx)
	assert.ErrorIs(t, err, ErrNoFeaturedProject)

	repo.EXPECT().FindFeatured(ctx).Return(nil, errors.New("db down"))
	_, err = svc.Featured(ctx)
	assert.Error(t, err)
}

package notifyservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestService_Notify_SwallowsDeliveryErrors(t *testing.T) {
	ctx := context.Background()
	svc, repo := NewMock(t)

	repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

	// must not panic or propagate
	svc.Notify(ctx, &domain.Notification{UserID: 1, Kind: domain.NotifyBetResult})
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()
	svc, repo := NewMock(t)

	repo.EXPECT().MarkRead(ctx, 5, 1).Return(true, nil)
	assert.NoError(t, svc.MarkRead(ctx, 5, 1))

	repo.EXPECT().MarkRead(ctx, 6, 1).Return(false, nil)
	assert.ErrorIs(t, svc.MarkRead(ctx, 6, 1), ErrNotificationNotFound)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc, repo := NewMock(t)

	repo.EXPECT().FindByUserID(ctx, 1).Return([]domain.Notification{{ID: 1}, {ID: 2}}, nil)
	list, err := svc.List(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

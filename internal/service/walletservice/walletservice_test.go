package walletservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	userRepo  *MockUserRepo
	txRepo    *MockTransactionRepo
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &mocks{
		userRepo:  NewMockUserRepo(ctrl),
		txRepo:    NewMockTransactionRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	svc := New(m.userRepo, m.txRepo, m.txManager)
	return svc, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func TestService_GrantDaily(t *testing.T) {
	ctx := context.Background()
	today := startOfDay(testNow)
	yesterday := today.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		amount      int64
		setupMock   func(m *mocks)
		wantBalance int64
		wantGranted int64
		wantErr     error
	}{
		{
			name:   "full grant within allowance",
			amount: 30,
			setupMock: func(m *mocks) {
				passthroughTx(m)
				m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{
					ID: 1, Balance: 100, DailySpent: 20, LastSpendDate: &today,
				}, nil)
				m.userRepo.EXPECT().UpdateSpending(ctx, 1, int64(130), int64(50), today).Return(nil)
				m.txRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TxDaily, tx.Kind)
						assert.Equal(t, int64(30), tx.Amount)
						return tx, nil
					})
			},
			wantBalance: 130,
			wantGranted: 30,
		},
		{
			name:   "grant clamped to the remainder",
			amount: 80,
			setupMock: func(m *mocks) {
				passthroughTx(m)
				m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{
					ID: 1, Balance: 100, DailySpent: 70, LastSpendDate: &today,
				}, nil)
				m.userRepo.EXPECT().UpdateSpending(ctx, 1, int64(130), int64(100), today).Return(nil)
				m.txRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Transaction{}, nil)
			},
			wantBalance: 130,
			wantGranted: 30,
		},
		{
			name:   "counter resets on a new day",
			amount: 50,
			setupMock: func(m *mocks) {
				passthroughTx(m)
				m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{
					ID: 1, Balance: 100, DailySpent: 100, LastSpendDate: &yesterday,
				}, nil)
				m.userRepo.EXPECT().UpdateSpending(ctx, 1, int64(150), int64(50), today).Return(nil)
				m.txRepo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Transaction{}, nil)
			},
			wantBalance: 150,
			wantGranted: 50,
		},
		{
			name:   "allowance already used up",
			amount: 10,
			setupMock: func(m *mocks) {
				passthroughTx(m)
				m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{
					ID: 1, Balance: 100, DailySpent: 100, LastSpendDate: &today,
				}, nil)
			},
			wantErr: ErrDailyLimitExceeded,
		},
		{
			name:      "non-positive amount",
			amount:    0,
			setupMock: func(m *mocks) {},
			wantErr:   ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			svc.WithClock(func() time.Time { return testNow })
			tt.setupMock(m)

			balance, granted, err := svc.GrantDaily(ctx, 1, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantBalance, balance)
			assert.Equal(t, tt.wantGranted, granted)
		})
	}
}

func TestService_Purchase(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	passthroughTx(m)

	m.userRepo.EXPECT().UpdateBalance(ctx, 1, int64(500)).Return(int64(600), nil)
	m.txRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, domain.TxPurchase, tx.Kind)
			return tx, nil
		})

	balance, err := svc.Purchase(ctx, 1, 500)
	assert.NoError(t, err)
	assert.Equal(t, int64(600), balance)

	_, err = svc.Purchase(ctx, 1, -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestService_GetBalance(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1, Balance: 42}, nil)
	user, err := svc.GetBalance(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.Balance)

	m.userRepo.EXPECT().FindByID(ctx, 2).Return(nil, nil)
	_, err = svc.GetBalance(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userCols = []string{
	"id", "username", "password_hash", "balance", "points", "invite_code", "daily_spent", "last_spend_date",
	"prefers_strategic", "prefers_creative", "prefers_social", "prefers_competitive", "prefers_quick", "created_at",
}

func userRow(user *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).AddRow(
		user.ID, user.Username, user.PasswordHash, user.Balance, user.Points,
		user.InviteCode, user.DailySpent, user.LastSpendDate,
		user.Prefs.Strategic, user.Prefs.Creative, user.Prefs.Social,
		user.Prefs.Competitive, user.Prefs.Quick, user.CreatedAt,
	)
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	existing := &domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: "hashed_password",
		Balance:      100,
		InviteCode:   "ZEST1A2B3C",
		CreatedAt:    createdAt,
	}

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "alice",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE username = $1`)).
					WithArgs("alice").
					WillReturnRows(userRow(existing))
			},
			expectErr: false,
			result:    existing,
		},
		{
			name:     "User not found",
			username: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE username = $1`)).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "alice",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE username = $1`)).
					WithArgs("alice").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created := &domain.User{
		ID:           1,
		Username:     "new_user",
		PasswordHash: "hashed_password",
		Balance:      domain.StartingBalance,
		InviteCode:   "ZEST9F8E7D",
		CreatedAt:    createdAt,
	}

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		wantErrIs error
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Username:     "new_user",
				PasswordHash: "hashed_password",
				Balance:      domain.StartingBalance,
				InviteCode:   "ZEST9F8E7D",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO users (username, password_hash, balance, invite_code)
        VALUES ($1, $2, $3, $4)
        RETURNING `+userColumns)).
					WithArgs("new_user", "hashed_password", domain.StartingBalance, "ZEST9F8E7D").
					WillReturnRows(userRow(created))
			},
			expectErr: false,
			result:    created,
		},
		{
			name: "Database error",
			user: &domain.User{
				Username:     "new_user",
				PasswordHash: "hashed_password",
				Balance:      domain.StartingBalance,
				InviteCode:   "ZEST9F8E7D",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO users (username, password_hash, balance, invite_code)
        VALUES ($1, $2, $3, $4)
        RETURNING `+userColumns)).
					WithArgs("new_user", "hashed_password", domain.StartingBalance, "ZEST9F8E7D").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name: "Concurrent duplicate username",
			user: &domain.User{
				Username:     "new_user",
				PasswordHash: "hashed_password",
				Balance:      domain.StartingBalance,
				InviteCode:   "ZEST9F8E7D",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO users (username, password_hash, balance, invite_code)
        VALUES ($1, $2, $3, $4)
        RETURNING `+userColumns)).
					WithArgs("new_user", "hashed_password", domain.StartingBalance, "ZEST9F8E7D").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: true,
			wantErrIs: pg.ErrUniqueViolation,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		delta     int64
		mockSetup func()
		expectErr bool
		balance   int64
	}{
		{
			name:   "Balance updated",
			userID: 1,
			delta:  -100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET balance = balance + $1 WHERE id = $2 RETURNING balance`)).
					WithArgs(int64(-100), 1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(400)))
			},
			expectErr: false,
			balance:   400,
		},
		{
			name:   "Database error",
			userID: 1,
			delta:  50,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET balance = balance + $1 WHERE id = $2 RETURNING balance`)).
					WithArgs(int64(50), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			balance:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.UpdateBalance(context.Background(), tt.userID, tt.delta)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.balance, balance)
		})
	}
}

func TestRepository_UpdateSpending(t *testing.T) {
	repo, mock := NewMock(t)

	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Spending updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET balance = $1, daily_spent = $2, last_spend_date = $3 WHERE id = $4`)).
					WithArgs(int64(400), int64(100), today, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET balance = $1, daily_spent = $2, last_spend_date = $3 WHERE id = $4`)).
					WithArgs(int64(400), int64(100), today, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateSpending(context.Background(), 1, 400, 100, today)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_TopByPoints(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	alice := domain.User{ID: 1, Username: "alice", PasswordHash: "h1", Points: 900, InviteCode: "ZEST1A2B3C", CreatedAt: createdAt}
	bob := domain.User{ID: 2, Username: "bob", PasswordHash: "h2", Points: 500, InviteCode: "ZEST4D5E6F", CreatedAt: createdAt}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.User
	}{
		{
			name: "Users ranked by points",
			mockSetup: func() {
				rows := pgxmock.NewRows(userCols).
					AddRow(alice.ID, alice.Username, alice.PasswordHash, alice.Balance, alice.Points,
						alice.InviteCode, alice.DailySpent, alice.LastSpendDate,
						alice.Prefs.Strategic, alice.Prefs.Creative, alice.Prefs.Social,
						alice.Prefs.Competitive, alice.Prefs.Quick, alice.CreatedAt).
					AddRow(bob.ID, bob.Username, bob.PasswordHash, bob.Balance, bob.Points,
						bob.InviteCode, bob.DailySpent, bob.LastSpendDate,
						bob.Prefs.Strategic, bob.Prefs.Creative, bob.Prefs.Social,
						bob.Prefs.Competitive, bob.Prefs.Quick, bob.CreatedAt)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users ORDER BY points DESC, id LIMIT $1`)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    []domain.User{alice, bob},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users ORDER BY points DESC, id LIMIT $1`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.TopByPoints(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_RecentlyActiveIDs(t *testing.T) {
	repo, mock := NewMock(t)

	since := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []int
	}{
		{
			name: "Active users returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(3)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT user_id FROM transactions WHERE created_at > $1`)).
					WithArgs(since).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    []int{1, 3},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT user_id FROM transactions WHERE created_at > $1`)).
					WithArgs(since).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.RecentlyActiveIDs(context.Background(), since)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

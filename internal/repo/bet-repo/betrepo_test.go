package betrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/zestbet/zestbet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var betCols = []string{
	"id", "title", "description", "creator_id", "min_stake", "max_stake", "total_pool", "end_date",
	"is_resolved", "winning_prediction",
	"strategic_score", "creative_score", "social_score", "competitive_score", "quick_score", "created_at",
}

func betRow(bet *domain.Bet) *pgxmock.Rows {
	return pgxmock.NewRows(betCols).AddRow(
		bet.ID, bet.Title, bet.Description, bet.CreatorID, bet.MinStake, bet.MaxStake,
		bet.TotalPool, bet.EndDate, bet.IsResolved, bet.WinningPrediction,
		bet.Scores.Strategic, bet.Scores.Creative, bet.Scores.Social,
		bet.Scores.Competitive, bet.Scores.Quick, bet.CreatedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	endDate := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	created := &domain.Bet{
		ID:        7,
		Title:     "Will it rain tomorrow?",
		CreatorID: 1,
		MinStake:  10,
		MaxStake:  1000,
		EndDate:   endDate,
		Scores:    domain.Vector{Strategic: 0.7, Competitive: 0.8},
		CreatedAt: createdAt,
	}

	tests := []struct {
		name      string
		bet       *domain.Bet
		mockSetup func()
		expectErr bool
		result    *domain.Bet
	}{
		{
			name: "Create bet successfully",
			bet: &domain.Bet{
				Title:     "Will it rain tomorrow?",
				CreatorID: 1,
				MinStake:  10,
				MaxStake:  1000,
				EndDate:   endDate,
				Scores:    domain.Vector{Strategic: 0.7, Competitive: 0.8},
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO bets (title, description, creator_id, min_stake, max_stake, end_date,
            strategic_score, creative_score, social_score, competitive_score, quick_score)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+betColumns)).
					WithArgs("Will it rain tomorrow?", "", 1, int64(10), int64(1000), endDate,
						0.7, 0.0, 0.0, 0.8, 0.0).
					WillReturnRows(betRow(created))
			},
			expectErr: false,
			result:    created,
		},
		{
			name: "Database error",
			bet: &domain.Bet{
				Title:     "Will it rain tomorrow?",
				CreatorID: 1,
				MinStake:  10,
				MaxStake:  1000,
				EndDate:   endDate,
				Scores:    domain.Vector{Strategic: 0.7, Competitive: 0.8},
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO bets (title, description, creator_id, min_stake, max_stake, end_date,
            strategic_score, creative_score, social_score, competitive_score, quick_score)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+betColumns)).
					WithArgs("Will it rain tomorrow?", "", 1, int64(10), int64(1000), endDate,
						0.7, 0.0, 0.0, 0.8, 0.0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.bet)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	endDate := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	existing := &domain.Bet{
		ID:        7,
		Title:     "Will it rain tomorrow?",
		CreatorID: 1,
		MinStake:  10,
		MaxStake:  1000,
		TotalPool: 270,
		EndDate:   endDate,
		CreatedAt: createdAt,
	}

	tests := []struct {
		name      string
		betID     int
		mockSetup func()
		expectErr bool
		result    *domain.Bet
	}{
		{
			name:  "Bet found",
			betID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + betColumns + ` FROM bets WHERE id = $1`)).
					WithArgs(7).
					WillReturnRows(betRow(existing))
			},
			expectErr: false,
			result:    existing,
		},
		{
			name:  "Bet not found",
			betID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + betColumns + ` FROM bets WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			betID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + betColumns + ` FROM bets WHERE id = $1`)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.betID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Resolve(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		resolved  bool
	}{
		{
			name: "Bet resolved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE bets SET is_resolved = TRUE, winning_prediction = $1
        WHERE id = $2 AND is_resolved = FALSE`)).
					WithArgs("yes", 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			resolved:  true,
		},
		{
			name: "Already resolved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE bets SET is_resolved = TRUE, winning_prediction = $1
        WHERE id = $2 AND is_resolved = FALSE`)).
					WithArgs("yes", 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			resolved:  false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE bets SET is_resolved = TRUE, winning_prediction = $1
        WHERE id = $2 AND is_resolved = FALSE`)).
					WithArgs("yes", 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			resolved:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resolved, err := repo.Resolve(context.Background(), 7, "yes")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.resolved, resolved)
		})
	}
}

func TestRepository_AddToPool(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Pool credited",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE bets SET total_pool = total_pool + $1 WHERE id = $2`)).
					WithArgs(int64(90), 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE bets SET total_pool = total_pool + $1 WHERE id = $2`)).
					WithArgs(int64(90), 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AddToPool(context.Background(), 7, 90)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ToggleLike(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		liked     bool
	}{
		{
			name: "Like added when none exists",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bet_likes WHERE bet_id = $1 AND user_id = $2`)).
					WithArgs(7, 1).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bet_likes (bet_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`)).
					WithArgs(7, 1).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
			liked:     true,
		},
		{
			name: "Existing like removed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bet_likes WHERE bet_id = $1 AND user_id = $2`)).
					WithArgs(7, 1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
			liked:     false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bet_likes WHERE bet_id = $1 AND user_id = $2`)).
					WithArgs(7, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			liked:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			liked, err := repo.ToggleLike(context.Background(), 7, 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.liked, liked)
		})
	}
}

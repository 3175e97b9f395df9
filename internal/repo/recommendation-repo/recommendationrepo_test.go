package recommendationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

var recommendationCols = []string{
	"id", "user_id", "kind", "score", "reason", "expires_at", "is_shown", "is_clicked",
	"related_bet_id", "related_mission_id", "related_user_id", "created_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	betID := 7
	expiresAt := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)
	rec := &domain.Recommendation{
		UserID:       1,
		Kind:         domain.RecommendBet,
		Score:        0.42,
		Reason:       "Matches your betting style: Will it rain tomorrow?",
		ExpiresAt:    expiresAt,
		RelatedBetID: &betID,
	}

	insertQuery := regexp.QuoteMeta(`
        INSERT INTO recommendations
            (user_id, kind, score, reason, expires_at, related_bet_id, related_mission_id, related_user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT DO NOTHING`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		inserted  bool
	}{
		{
			name: "Recommendation created with reason",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs(1, domain.RecommendBet, 0.42, rec.Reason, expiresAt, &betID, (*int)(nil), (*int)(nil)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
			inserted:  true,
		},
		{
			name: "Duplicate skipped",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs(1, domain.RecommendBet, 0.42, rec.Reason, expiresAt, &betID, (*int)(nil), (*int)(nil)).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectErr: false,
			inserted:  false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(insertQuery).
					WithArgs(1, domain.RecommendBet, 0.42, rec.Reason, expiresAt, &betID, (*int)(nil), (*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			inserted:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			inserted, err := repo.Create(context.Background(), rec)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.inserted, inserted)
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)

	betID := 7
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	expiresAt := now.Add(7 * 24 * time.Hour)
	existing := domain.Recommendation{
		ID:           11,
		UserID:       1,
		Kind:         domain.RecommendBet,
		Score:        0.42,
		Reason:       "Matches your betting style: Will it rain tomorrow?",
		ExpiresAt:    expiresAt,
		RelatedBetID: &betID,
		CreatedAt:    now,
	}

	selectQuery := regexp.QuoteMeta(`
        SELECT ` + recommendationColumns + `
        FROM recommendations
        WHERE user_id = $1 AND kind = $2 AND expires_at > $3
        ORDER BY score DESC, created_at DESC
        LIMIT $4`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Recommendation
	}{
		{
			name: "Active recommendations returned",
			mockSetup: func() {
				rows := pgxmock.NewRows(recommendationCols).AddRow(
					existing.ID, existing.UserID, existing.Kind, existing.Score, existing.Reason,
					existing.ExpiresAt, existing.IsShown, existing.IsClicked,
					existing.RelatedBetID, existing.RelatedMissionID, existing.RelatedUserID, existing.CreatedAt,
				)
				mock.ExpectQuery(selectQuery).
					WithArgs(1, domain.RecommendBet, now, 5).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    []domain.Recommendation{existing},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(selectQuery).
					WithArgs(1, domain.RecommendBet, now, 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActive(context.Background(), 1, domain.RecommendBet, 5, now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

package recommendationrepo

import (
	"context"
	"time"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

const recommendationColumns = `id, user_id, kind, score, reason, expires_at, is_shown, is_clicked,
        related_bet_id, related_mission_id, related_user_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create inserts a recommendation, silently skipping duplicates for the
// same (user, kind, target) triple. Returns whether a row was inserted.
func (r *Repository) Create(ctx context.Context, rec *domain.Recommendation) (bool, error) {
	query := `
        INSERT INTO recommendations
            (user_id, kind, score, reason, expires_at, related_bet_id, related_mission_id, related_user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT DO NOTHING`
	tag, err := r.db.Exec(ctx, query,
		rec.UserID, rec.Kind, rec.Score, rec.Reason, rec.ExpiresAt,
		rec.RelatedBetID, rec.RelatedMissionID, rec.RelatedUserID)
	if err != nil {
		zap.L().Error("failed to create recommendation", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindActive returns unexpired recommendations ordered by score.
func (r *Repository) FindActive(ctx context.Context, userID int, kind string, limit int, now time.Time) ([]domain.Recommendation, error) {
	query := `
        SELECT ` + recommendationColumns + `
        FROM recommendations
        WHERE user_id = $1 AND kind = $2 AND expires_at > $3
        ORDER BY score DESC, created_at DESC
        LIMIT $4`
	rows, err := r.db.Query(ctx, query, userID, kind, now, limit)
	if err != nil {
		zap.L().Error("failed to query recommendations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var recs []domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Kind, &rec.Score, &rec.Reason, &rec.ExpiresAt, &rec.IsShown, &rec.IsClicked,
			&rec.RelatedBetID, &rec.RelatedMissionID, &rec.RelatedUserID, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *Repository) MarkShown(ctx context.Context, recommendationID, userID int) (bool, error) {
	query := `UPDATE recommendations SET is_shown = TRUE WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, recommendationID, userID)
	if err != nil {
		zap.L().Error("failed to mark recommendation shown", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkClicked(ctx context.Context, recommendationID, userID int) (bool, error) {
	query := `UPDATE recommendations SET is_clicked = TRUE WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, recommendationID, userID)
	if err != nil {
		zap.L().Error("failed to mark recommendation clicked", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteExpired prunes stale rows and returns how many were removed.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM recommendations WHERE expires_at <= $1`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to delete expired recommendations", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

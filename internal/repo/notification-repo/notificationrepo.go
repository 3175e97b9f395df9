package notificationrepo

import (
	"context"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (user_id, title, message, kind, related_bet_id)
        VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, query, n.UserID, n.Title, n.Message, n.Kind, n.RelatedBetID); err != nil {
		zap.L().Error("failed to create notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, title, message, kind, is_read, related_bet_id, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to query notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Kind, &n.IsRead, &n.RelatedBetID, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *Repository) MarkRead(ctx context.Context, notificationID, userID int) (bool, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, notificationID, userID)
	if err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to mark notifications read", zap.Error(err))
		return err
	}
	return nil
}

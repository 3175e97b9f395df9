package friendshiprepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

const friendshipColumns = `id, requester_id, addressee_id, status, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanFriendship(row pgx.Row) (*domain.Friendship, error) {
	var f domain.Friendship
	err := row.Scan(&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Create(ctx context.Context, requesterID, addresseeID int) (*domain.Friendship, error) {
	query := `
        INSERT INTO friendships (requester_id, addressee_id)
        VALUES ($1, $2)
        RETURNING ` + friendshipColumns
	created, err := scanFriendship(r.db.QueryRow(ctx, query, requesterID, addresseeID))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, pg.ErrUniqueViolation
		}
		zap.L().Error("failed to create friendship", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, friendshipID int) (*domain.Friendship, error) {
	query := `SELECT ` + friendshipColumns + ` FROM friendships WHERE id = $1`
	friendship, err := scanFriendship(r.db.QueryRow(ctx, query, friendshipID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find friendship", zap.Error(err))
		return nil, err
	}
	return friendship, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Friendship, error) {
	query := `
        SELECT ` + friendshipColumns + `
        FROM friendships
        WHERE requester_id = $1 OR addressee_id = $1
        ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to query friendships", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var friendships []domain.Friendship
	for rows.Next() {
		friendship, err := scanFriendship(rows)
		if err != nil {
			return nil, err
		}
		friendships = append(friendships, *friendship)
	}
	return friendships, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, friendshipID int, status string) error {
	query := `UPDATE friendships SET status = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, status, friendshipID); err != nil {
		zap.L().Error("failed to update friendship status", zap.Error(err))
		return err
	}
	return nil
}

// FriendIDs returns ids of accepted friends of the user, either direction.
func (r *Repository) FriendIDs(ctx context.Context, userID int) ([]int, error) {
	query := `
        SELECT CASE WHEN requester_id = $1 THEN addressee_id ELSE requester_id END
        FROM friendships
        WHERE (requester_id = $1 OR addressee_id = $1) AND status = 'accepted'`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to query friend ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

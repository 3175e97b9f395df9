package missionrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) FindAll(ctx context.Context) ([]domain.Mission, error) {
	query := `SELECT id, title, description, reward, created_at FROM missions ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to query missions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var missions []domain.Mission
	for rows.Next() {
		var m domain.Mission
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Reward, &m.CreatedAt); err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, rows.Err()
}

// FindByTitleLike returns the first mission whose title contains the given
// fragment, case-insensitive. Mission kinds are keyed off free text in the
// product data, so lookups go through this.
func (r *Repository) FindByTitleLike(ctx context.Context, fragment string) (*domain.Mission, error) {
	query := `
        SELECT id, title, description, reward, created_at
        FROM missions
        WHERE title ILIKE '%' || $1 || '%'
        ORDER BY id
        LIMIT 1`
	var m domain.Mission
	err := r.db.QueryRow(ctx, query, fragment).Scan(&m.ID, &m.Title, &m.Description, &m.Reward, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find mission by title", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// CreateUserMissions seeds one open progress row per existing mission.
func (r *Repository) CreateUserMissions(ctx context.Context, userID int) error {
	query := `
        INSERT INTO user_missions (user_id, mission_id)
        SELECT $1, id FROM missions
        ON CONFLICT DO NOTHING`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to create user missions", zap.Error(err))
		return err
	}
	return nil
}

// Claim atomically transitions the user's mission from open to completed.
// Returns false when the mission was already completed (or never seeded),
// which makes the reward pay-once under concurrent settlements.
func (r *Repository) Claim(ctx context.Context, userID, missionID int, completedAt time.Time) (bool, error) {
	query := `
        UPDATE user_missions
        SET status = $1, completed_at = $2
        WHERE user_id = $3 AND mission_id = $4 AND status = $5`
	tag, err := r.db.Exec(ctx, query, domain.MissionCompleted, completedAt, userID, missionID, domain.MissionOpen)
	if err != nil {
		zap.L().Error("failed to claim mission", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindUserMissions(ctx context.Context, userID int) ([]domain.UserMission, error) {
	query := `
        SELECT user_id, mission_id, status, completed_at
        FROM user_missions
        WHERE user_id = $1
        ORDER BY mission_id`
	return r.queryUserMissions(ctx, query, userID)
}

// FindOpenByUser returns the mission templates the user has not completed.
func (r *Repository) FindOpenByUser(ctx context.Context, userID int) ([]domain.Mission, error) {
	query := `
        SELECT m.id, m.title, m.description, m.reward, m.created_at
        FROM missions m
        JOIN user_missions um ON um.mission_id = m.id
        WHERE um.user_id = $1 AND um.status = 'open'
        ORDER BY m.id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to query open missions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var missions []domain.Mission
	for rows.Next() {
		var m domain.Mission
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Reward, &m.CreatedAt); err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, rows.Err()
}

func (r *Repository) queryUserMissions(ctx context.Context, query string, args ...any) ([]domain.UserMission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query user missions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var missions []domain.UserMission
	for rows.Next() {
		var um domain.UserMission
		if err := rows.Scan(&um.UserID, &um.MissionID, &um.Status, &um.CompletedAt); err != nil {
			return nil, err
		}
		missions = append(missions, um)
	}
	return missions, rows.Err()
}

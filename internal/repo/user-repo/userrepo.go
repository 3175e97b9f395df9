package userrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

const userColumns = `id, username, password_hash, balance, points, invite_code, daily_spent, last_spend_date,
        prefers_strategic, prefers_creative, prefers_social, prefers_competitive, prefers_quick, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Balance, &user.Points,
		&user.InviteCode, &user.DailySpent, &user.LastSpendDate,
		&user.Prefs.Strategic, &user.Prefs.Creative, &user.Prefs.Social,
		&user.Prefs.Competitive, &user.Prefs.Quick, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the account. The unique constraints on username and
// invite_code turn a concurrent duplicate into pg.ErrUniqueViolation.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (username, password_hash, balance, invite_code)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + userColumns
	row := r.db.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Balance, user.InviteCode)
	created, err := scanUser(row)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, pg.ErrUniqueViolation
		}
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by username", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByInviteCode(ctx context.Context, code string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE invite_code = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by invite code", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpdateBalance applies a signed delta and returns the new balance.
func (r *Repository) UpdateBalance(ctx context.Context, userID int, delta int64) (int64, error) {
	query := `UPDATE users SET balance = balance + $1 WHERE id = $2 RETURNING balance`
	var balance int64
	if err := r.db.QueryRow(ctx, query, delta, userID).Scan(&balance); err != nil {
		zap.L().Error("failed to update user balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// UpdateSpending persists the post-settlement balance together with the
// daily counter and its reset date. The three columns always move together.
func (r *Repository) UpdateSpending(ctx context.Context, userID int, balance, dailySpent int64, lastSpendDate time.Time) error {
	query := `UPDATE users SET balance = $1, daily_spent = $2, last_spend_date = $3 WHERE id = $4`
	if _, err := r.db.Exec(ctx, query, balance, dailySpent, lastSpendDate, userID); err != nil {
		zap.L().Error("failed to update user spending", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePrefs(ctx context.Context, userID int, prefs domain.Vector) error {
	query := `
        UPDATE users
        SET prefers_strategic = $1, prefers_creative = $2, prefers_social = $3,
            prefers_competitive = $4, prefers_quick = $5
        WHERE id = $6`
	_, err := r.db.Exec(ctx, query,
		prefs.Strategic, prefs.Creative, prefs.Social, prefs.Competitive, prefs.Quick, userID)
	if err != nil {
		zap.L().Error("failed to update user preferences", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddPoints(ctx context.Context, userID int, delta int64) error {
	query := `UPDATE users SET points = points + $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, delta, userID); err != nil {
		zap.L().Error("failed to add user points", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) TopByPoints(ctx context.Context, limit int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY points DESC, id LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to query top users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// FindIDsExcluding returns ids of all users except the given set.
func (r *Repository) FindIDsExcluding(ctx context.Context, excluded []int) ([]int, error) {
	query := `SELECT id FROM users WHERE NOT (id = ANY($1))`
	rows, err := r.db.Query(ctx, query, excluded)
	if err != nil {
		zap.L().Error("failed to query users by exclusion", zap.Error(err))
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

// RecentlyActiveIDs returns users with any ledger activity since the cutoff.
func (r *Repository) RecentlyActiveIDs(ctx context.Context, since time.Time) ([]int, error) {
	query := `SELECT DISTINCT user_id FROM transactions WHERE created_at > $1`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		zap.L().Error("failed to query recently active users", zap.Error(err))
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

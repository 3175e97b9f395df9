package betrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

const betColumns = `id, title, description, creator_id, min_stake, max_stake, total_pool, end_date,
        is_resolved, winning_prediction,
        strategic_score, creative_score, social_score, competitive_score, quick_score, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanBet(row pgx.Row) (*domain.Bet, error) {
	var bet domain.Bet
	err := row.Scan(
		&bet.ID, &bet.Title, &bet.Description, &bet.CreatorID, &bet.MinStake, &bet.MaxStake,
		&bet.TotalPool, &bet.EndDate, &bet.IsResolved, &bet.WinningPrediction,
		&bet.Scores.Strategic, &bet.Scores.Creative, &bet.Scores.Social,
		&bet.Scores.Competitive, &bet.Scores.Quick, &bet.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

func (r *Repository) Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error) {
	query := `
        INSERT INTO bets (title, description, creator_id, min_stake, max_stake, end_date,
            strategic_score, creative_score, social_score, competitive_score, quick_score)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + betColumns
	row := r.db.QueryRow(ctx, query,
		bet.Title, bet.Description, bet.CreatorID, bet.MinStake, bet.MaxStake, bet.EndDate,
		bet.Scores.Strategic, bet.Scores.Creative, bet.Scores.Social, bet.Scores.Competitive, bet.Scores.Quick)
	created, err := scanBet(row)
	if err != nil {
		zap.L().Error("failed to create bet", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, betID int) (*domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE id = $1`
	bet, err := scanBet(r.db.QueryRow(ctx, query, betID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find bet", zap.Error(err))
		return nil, err
	}
	return bet, nil
}

func (r *Repository) FindOpen(ctx context.Context) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets
        WHERE end_date > NOW() AND is_resolved = FALSE
        ORDER BY created_at DESC`
	return r.queryBets(ctx, query)
}

func (r *Repository) FindEnded(ctx context.Context) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets
        WHERE end_date <= NOW() OR is_resolved = TRUE
        ORDER BY created_at DESC`
	return r.queryBets(ctx, query)
}

// FindOpenUnplacedByUser returns open bets the user has no placement on.
func (r *Repository) FindOpenUnplacedByUser(ctx context.Context, userID int) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets
        WHERE end_date > NOW() AND is_resolved = FALSE
          AND id NOT IN (SELECT bet_id FROM bet_placements WHERE user_id = $1)
        ORDER BY created_at DESC`
	return r.queryBets(ctx, query, userID)
}

func (r *Repository) queryBets(ctx context.Context, query string, args ...any) ([]domain.Bet, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query bets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		bets = append(bets, *bet)
	}
	return bets, rows.Err()
}

// AddToPool credits the net stake to the running pool. The pool only grows.
func (r *Repository) AddToPool(ctx context.Context, betID int, amount int64) error {
	query := `UPDATE bets SET total_pool = total_pool + $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, amount, betID); err != nil {
		zap.L().Error("failed to add to bet pool", zap.Error(err))
		return err
	}
	return nil
}

// Resolve stamps the winning prediction exactly once; a second resolution
// matches zero rows.
func (r *Repository) Resolve(ctx context.Context, betID int, winningPrediction string) (bool, error) {
	query := `
        UPDATE bets SET is_resolved = TRUE, winning_prediction = $1
        WHERE id = $2 AND is_resolved = FALSE`
	tag, err := r.db.Exec(ctx, query, winningPrediction, betID)
	if err != nil {
		zap.L().Error("failed to resolve bet", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ToggleLike flips the like state and reports whether the bet is now liked.
func (r *Repository) ToggleLike(ctx context.Context, betID, userID int) (bool, error) {
	del := `DELETE FROM bet_likes WHERE bet_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, del, betID, userID)
	if err != nil {
		zap.L().Error("failed to unlike bet", zap.Error(err))
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}
	ins := `INSERT INTO bet_likes (bet_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := r.db.Exec(ctx, ins, betID, userID); err != nil {
		zap.L().Error("failed to like bet", zap.Error(err))
		return false, err
	}
	return true, nil
}

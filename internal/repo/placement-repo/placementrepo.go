package placementrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

const placementColumns = `id, user_id, bet_id, amount, prediction, platform_fee, charity_donation, is_winner, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanPlacement(row pgx.Row) (*domain.BetPlacement, error) {
	var p domain.BetPlacement
	err := row.Scan(
		&p.ID, &p.UserID, &p.BetID, &p.Amount, &p.Prediction,
		&p.PlatformFee, &p.CharityDonation, &p.IsWinner, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts the placement. The (user_id, bet_id) unique constraint
// turns a concurrent double-submit into pg.ErrUniqueViolation.
func (r *Repository) Create(ctx context.Context, placement *domain.BetPlacement) (*domain.BetPlacement, error) {
	query := `
        INSERT INTO bet_placements (user_id, bet_id, amount, prediction, platform_fee, charity_donation)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + placementColumns
	row := r.db.QueryRow(ctx, query,
		placement.UserID, placement.BetID, placement.Amount, placement.Prediction,
		placement.PlatformFee, placement.CharityDonation)
	created, err := scanPlacement(row)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, pg.ErrUniqueViolation
		}
		zap.L().Error("failed to create placement", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByUserAndBet(ctx context.Context, userID, betID int) (*domain.BetPlacement, error) {
	query := `SELECT ` + placementColumns + ` FROM bet_placements WHERE user_id = $1 AND bet_id = $2`
	placement, err := scanPlacement(r.db.QueryRow(ctx, query, userID, betID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find placement", zap.Error(err))
		return nil, err
	}
	return placement, nil
}

func (r *Repository) FindByBet(ctx context.Context, betID int) ([]domain.BetPlacement, error) {
	query := `SELECT ` + placementColumns + ` FROM bet_placements WHERE bet_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, betID)
	if err != nil {
		zap.L().Error("failed to query placements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var placements []domain.BetPlacement
	for rows.Next() {
		placement, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, *placement)
	}
	return placements, rows.Err()
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.BetPlacement, error) {
	query := `SELECT ` + placementColumns + ` FROM bet_placements WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to query placements by user", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var placements []domain.BetPlacement
	for rows.Next() {
		placement, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, *placement)
	}
	return placements, rows.Err()
}

// MarkWinners resolves the tri-state winner flag for every placement of a
// bet in one statement.
func (r *Repository) MarkWinners(ctx context.Context, betID int, winningPrediction string) error {
	query := `UPDATE bet_placements SET is_winner = (prediction = $1) WHERE bet_id = $2`
	if _, err := r.db.Exec(ctx, query, winningPrediction, betID); err != nil {
		zap.L().Error("failed to mark winners", zap.Error(err))
		return err
	}
	return nil
}

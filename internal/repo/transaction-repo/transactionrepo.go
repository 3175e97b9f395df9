package transactionrepo

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

// Create appends a ledger entry. Rows are never updated or deleted.
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, amount, kind, description, related_bet_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, amount, kind, description, related_bet_id, created_at`
	var created domain.Transaction
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Kind, tx.Description, tx.RelatedBetID).Scan(
		&created.ID, &created.UserID, &created.Amount, &created.Kind,
		&created.Description, &created.RelatedBetID, &created.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, kind, description, related_bet_id, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to query transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Kind, &tx.Description, &tx.RelatedBetID, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// ExistsByUserAndKind reports whether the user has any ledger entry of the
// given kind. Used to make invite redemption one-shot.
func (r *Repository) ExistsByUserAndKind(ctx context.Context, userID int, kind string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE user_id = $1 AND kind = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, kind).Scan(&exists); err != nil {
		zap.L().Error("failed to check transaction existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

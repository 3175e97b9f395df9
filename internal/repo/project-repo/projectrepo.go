package projectrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

const projectColumns = `id, name, description, amount, featured, end_date, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanProject(row pgx.Row) (*domain.ImpactProject, error) {
	var p domain.ImpactProject
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Amount, &p.Featured, &p.EndDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindFeatured resolves the current featured project fresh on every call;
// nothing is cached between settlements.
func (r *Repository) FindFeatured(ctx context.Context) (*domain.ImpactProject, error) {
	query := `SELECT ` + projectColumns + ` FROM impact_projects WHERE featured = TRUE ORDER BY created_at DESC LIMIT 1`
	project, err := scanProject(r.db.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find featured project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.ImpactProject, error) {
	query := `SELECT ` + projectColumns + ` FROM impact_projects ORDER BY featured DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to query impact projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var projects []domain.ImpactProject
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

// AddAmount credits a donation. The accumulated amount only grows.
func (r *Repository) AddAmount(ctx context.Context, projectID int, amount int64) error {
	query := `UPDATE impact_projects SET amount = amount + $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, amount, projectID); err != nil {
		zap.L().Error("failed to add donation to project", zap.Error(err))
		return err
	}
	return nil
}

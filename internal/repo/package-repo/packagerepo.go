package packagerepo

import (
	"context"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const packageColumns = "id, name, price, daily_return, duration_days, is_active, created_at"

func scanPackage(row pgx.Row) (*domain.Package, error) {
	var p domain.Package
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.DailyReturn, &p.DurationDays, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan package", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Package, error) {
	query := `
        SELECT ` + packageColumns + `
        FROM packages
        WHERE id = $1
    `
	return scanPackage(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	query := `
        INSERT INTO packages (name, price, daily_return, duration_days, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + packageColumns + `
    `
	return scanPackage(r.db.QueryRow(ctx, query, pkg.Name, pkg.Price, pkg.DailyReturn, pkg.DurationDays, pkg.IsActive))
}

func (r *Repository) Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	query := `
        UPDATE packages
        SET name = $1, price = $2, daily_return = $3, duration_days = $4, is_active = $5
        WHERE id = $6
        RETURNING ` + packageColumns + `
    `
	return scanPackage(r.db.QueryRow(ctx, query, pkg.Name, pkg.Price, pkg.DailyReturn, pkg.DurationDays, pkg.IsActive, pkg.ID))
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM packages WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete package", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string) ([]domain.Package, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var p domain.Package
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.DailyReturn, &p.DurationDays, &p.IsActive, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan package row", zap.Error(err))
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Package, error) {
	query := `
        SELECT ` + packageColumns + `
        FROM packages
        WHERE is_active
        ORDER BY price ASC
    `
	return r.list(ctx, query)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Package, error) {
	query := `
        SELECT ` + packageColumns + `
        FROM packages
        ORDER BY price ASC
    `
	return r.list(ctx, query)
}

package depositrepo

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

const depositColumns = "id, user_id, amount, phone_number, message, status, approved_by, approved_at, created_at"

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.PhoneNumber, &d.Message,
		&d.Status, &d.ApprovedBy, &d.ApprovedAt, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan deposit", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
        INSERT INTO deposits (user_id, amount, phone_number, message)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + depositColumns + `
    `
	return scanDeposit(r.db.QueryRow(ctx, query, deposit.UserID, deposit.Amount, deposit.PhoneNumber, deposit.Message))
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE id = $1
    `
	return scanDeposit(r.db.QueryRow(ctx, query, id))
}

// DecideIfPending flips a PENDING deposit to its terminal status and records
// the deciding admin. Returns nil when the deposit is gone or already decided,
// so the status column itself acts as the compare-and-swap guard.
func (r *Repository) DecideIfPending(ctx context.Context, id int, status string, adminID int) (*domain.Deposit, error) {
	query := `
        UPDATE deposits
        SET status = $1, approved_by = $2, approved_at = now()
        WHERE id = $3 AND status = 'PENDING'
        RETURNING ` + depositColumns + `
    `
	return scanDeposit(r.db.QueryRow(ctx, query, status, adminID, id))
}

func (r *Repository) listQuery(ctx context.Context, query string, args ...any) ([]domain.Deposit, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		err := rows.Scan(&d.ID, &d.UserID, &d.Amount, &d.PhoneNumber, &d.Message,
			&d.Status, &d.ApprovedBy, &d.ApprovedAt, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, d)
	}
	return deposits, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.listQuery(ctx, query, userID)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        ORDER BY created_at DESC
    `
	return r.listQuery(ctx, query)
}

package payoutrepo

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

const payoutColumns = "id, user_id, amount, phone_number, status, approved_by, approved_at, created_at"

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	err := row.Scan(&p.ID, &p.UserID, &p.Amount, &p.PhoneNumber,
		&p.Status, &p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan payout", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
        INSERT INTO payouts (user_id, amount, phone_number)
        VALUES ($1, $2, $3)
        RETURNING ` + payoutColumns + `
    `
	return scanPayout(r.db.QueryRow(ctx, query, payout.UserID, payout.Amount, payout.PhoneNumber))
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE id = $1
    `
	return scanPayout(r.db.QueryRow(ctx, query, id))
}

// DecideIfPending flips a PENDING payout to its terminal status, using the
// status column as the compare-and-swap guard. Returns nil when the payout is
// gone or already decided.
func (r *Repository) DecideIfPending(ctx context.Context, id int, status string, adminID int) (*domain.Payout, error) {
	query := `
        UPDATE payouts
        SET status = $1, approved_by = $2, approved_at = now()
        WHERE id = $3 AND status = 'PENDING'
        RETURNING ` + payoutColumns + `
    `
	return scanPayout(r.db.QueryRow(ctx, query, status, adminID, id))
}

func (r *Repository) listQuery(ctx context.Context, query string, args ...any) ([]domain.Payout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.UserID, &p.Amount, &p.PhoneNumber,
			&p.Status, &p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.listQuery(ctx, query, userID)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        ORDER BY created_at DESC
    `
	return r.listQuery(ctx, query)
}

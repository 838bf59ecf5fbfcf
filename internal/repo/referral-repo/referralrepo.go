package referralrepo

import (
	"context"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const referralColumns = "id, referrer_id, referred_user_id, investment_id, reward_amount, created_at"

func scanReferral(row pgx.Row) (*domain.Referral, error) {
	var ref domain.Referral
	err := row.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredUserID, &ref.InvestmentID, &ref.RewardAmount, &ref.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan referral", zap.Error(err))
		return nil, err
	}
	return &ref, nil
}

func (r *Repository) Create(ctx context.Context, referrerID, referredUserID int) (*domain.Referral, error) {
	query := `
        INSERT INTO referrals (referrer_id, referred_user_id)
        VALUES ($1, $2)
        RETURNING ` + referralColumns + `
    `
	return scanReferral(r.db.QueryRow(ctx, query, referrerID, referredUserID))
}

func (r *Repository) FindByReferredUser(ctx context.Context, referredUserID int) (*domain.Referral, error) {
	query := `
        SELECT ` + referralColumns + `
        FROM referrals
        WHERE referred_user_id = $1
    `
	return scanReferral(r.db.QueryRow(ctx, query, referredUserID))
}

// RecordReward links the referral to the first qualifying investment and sets
// the reward, guarded on the link being unset so the bonus is recorded once.
func (r *Repository) RecordReward(ctx context.Context, id, investmentID int, reward decimal.Decimal) (*domain.Referral, error) {
	query := `
        UPDATE referrals
        SET investment_id = $1, reward_amount = $2
        WHERE id = $3 AND investment_id IS NULL
        RETURNING ` + referralColumns + `
    `
	return scanReferral(r.db.QueryRow(ctx, query, investmentID, reward, id))
}

func (r *Repository) ListByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `
        SELECT ` + referralColumns + `
        FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't list referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredUserID, &ref.InvestmentID, &ref.RewardAmount, &ref.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}
	return referrals, nil
}

package investmentrepo

import (
	"context"
	"time"

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

const investmentColumns = "id, user_id, package_id, principal, daily_return, status, total_earned, start_date, end_date, locked_at, created_at"

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(&inv.ID, &inv.UserID, &inv.PackageID, &inv.Principal, &inv.DailyReturn,
		&inv.Status, &inv.TotalEarned, &inv.StartDate, &inv.EndDate, &inv.LockedAt, &inv.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan investment", zap.Error(err))
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	query := `
        INSERT INTO investments (user_id, package_id, principal, daily_return, status, start_date, end_date, locked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + investmentColumns + `
    `
	return scanInvestment(r.db.QueryRow(ctx, query, inv.UserID, inv.PackageID, inv.Principal,
		inv.DailyReturn, inv.Status, inv.StartDate, inv.EndDate, inv.LockedAt))
}

// CreateEarnings inserts one PENDING earning slot per day of the investment.
func (r *Repository) CreateEarnings(ctx context.Context, investmentID int, amount decimal.Decimal, days int) error {
	query := `
        INSERT INTO earnings (investment_id, day_index, amount)
        SELECT $1, gs, $2
        FROM generate_series(1, $3) AS gs
    `
	_, err := r.db.Exec(ctx, query, investmentID, amount, days)
	if err != nil {
		zap.L().Error("can't create earnings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE id = $1
    `
	return scanInvestment(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the investment row; start-earning calls on the same
// investment serialize on this lock.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE id = $1
        FOR UPDATE
    `
	return scanInvestment(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list investments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var investments []domain.Investment
	for rows.Next() {
		var inv domain.Investment
		err := rows.Scan(&inv.ID, &inv.UserID, &inv.PackageID, &inv.Principal, &inv.DailyReturn,
			&inv.Status, &inv.TotalEarned, &inv.StartDate, &inv.EndDate, &inv.LockedAt, &inv.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan investment row", zap.Error(err))
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, nil
}

func (r *Repository) ListAllDetailed(ctx context.Context) ([]domain.InvestmentAdminView, error) {
	query := `
        SELECT i.id, i.user_id, i.package_id, i.principal, i.daily_return, i.status,
               i.total_earned, i.start_date, i.end_date, i.locked_at, i.created_at,
               u.username, u.email, p.name
        FROM investments i
        JOIN users u ON u.id = i.user_id
        JOIN packages p ON p.id = i.package_id
        ORDER BY i.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list all investments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var views []domain.InvestmentAdminView
	for rows.Next() {
		var v domain.InvestmentAdminView
		err := rows.Scan(&v.ID, &v.UserID, &v.PackageID, &v.Principal, &v.DailyReturn,
			&v.Status, &v.TotalEarned, &v.StartDate, &v.EndDate, &v.LockedAt, &v.CreatedAt,
			&v.Username, &v.Email, &v.PackageName)
		if err != nil {
			zap.L().Error("can't scan investment admin row", zap.Error(err))
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

const earningColumns = "id, investment_id, day_index, amount, status, started_at, credited_at"

func scanEarning(row pgx.Row) (*domain.Earning, error) {
	var e domain.Earning
	err := row.Scan(&e.ID, &e.InvestmentID, &e.DayIndex, &e.Amount, &e.Status, &e.StartedAt, &e.CreditedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan earning", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetEarningByID(ctx context.Context, id int) (*domain.Earning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM earnings
        WHERE id = $1
    `
	return scanEarning(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) ListEarningsByUserID(ctx context.Context, userID int) ([]domain.Earning, error) {
	query := `
        SELECT e.id, e.investment_id, e.day_index, e.amount, e.status, e.started_at, e.credited_at
        FROM earnings e
        JOIN investments i ON i.id = e.investment_id
        WHERE i.user_id = $1
        ORDER BY e.investment_id, e.day_index
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.Earning
	for rows.Next() {
		var e domain.Earning
		err := rows.Scan(&e.ID, &e.InvestmentID, &e.DayIndex, &e.Amount, &e.Status, &e.StartedAt, &e.CreditedAt)
		if err != nil {
			zap.L().Error("can't scan earning row", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, e)
	}
	return earnings, nil
}

func (r *Repository) CountStartedEarnings(ctx context.Context, investmentID int) (int, error) {
	query := `
        SELECT count(*)
        FROM earnings
        WHERE investment_id = $1 AND status = 'STARTED'
    `
	var count int
	if err := r.db.QueryRow(ctx, query, investmentID).Scan(&count); err != nil {
		zap.L().Error("can't count started earnings", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// StartEarningIfPending transitions PENDING -> STARTED, using the status column
// as the compare-and-swap guard. Returns nil when the earning was not PENDING.
func (r *Repository) StartEarningIfPending(ctx context.Context, id int) (*domain.Earning, error) {
	query := `
        UPDATE earnings
        SET status = 'STARTED', started_at = now()
        WHERE id = $1 AND status = 'PENDING'
        RETURNING ` + earningColumns + `
    `
	return scanEarning(r.db.QueryRow(ctx, query, id))
}

// CreditEarningIfStarted transitions STARTED -> CREDITED. The status guard
// makes crediting exactly-once even if two sweeps observe the same due row.
func (r *Repository) CreditEarningIfStarted(ctx context.Context, id int) (*domain.Earning, error) {
	query := `
        UPDATE earnings
        SET status = 'CREDITED', credited_at = now()
        WHERE id = $1 AND status = 'STARTED'
        RETURNING ` + earningColumns + `
    `
	return scanEarning(r.db.QueryRow(ctx, query, id))
}

// FindDueEarnings returns STARTED earnings whose accrual window elapsed before
// the cutoff, together with the owning user.
func (r *Repository) FindDueEarnings(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.DueEarning, error) {
	query := `
        SELECT e.id, e.investment_id, e.day_index, e.amount, e.status, e.started_at, e.credited_at, i.user_id
        FROM earnings e
        JOIN investments i ON i.id = e.investment_id
        WHERE e.status = 'STARTED' AND e.started_at <= $1
        ORDER BY e.started_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't find due earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var due []domain.DueEarning
	for rows.Next() {
		var d domain.DueEarning
		err := rows.Scan(&d.ID, &d.InvestmentID, &d.DayIndex, &d.Amount, &d.Status, &d.StartedAt, &d.CreditedAt, &d.UserID)
		if err != nil {
			zap.L().Error("can't scan due earning row", zap.Error(err))
			return nil, err
		}
		due = append(due, d)
	}
	return due, nil
}

func (r *Repository) AddTotalEarned(ctx context.Context, investmentID int, amount decimal.Decimal) error {
	query := `
        UPDATE investments
        SET total_earned = total_earned + $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, amount, investmentID)
	if err != nil {
		zap.L().Error("can't add total earned", zap.Error(err))
		return err
	}
	return nil
}

// CompleteIfFullyCredited marks the investment COMPLETED once no earning slot
// remains uncredited. Returns true when the transition happened.
func (r *Repository) CompleteIfFullyCredited(ctx context.Context, investmentID int) (bool, error) {
	query := `
        UPDATE investments
        SET status = 'COMPLETED'
        WHERE id = $1 AND status = 'ACTIVE'
          AND NOT EXISTS (
              SELECT 1 FROM earnings
              WHERE investment_id = $1 AND status <> 'CREDITED'
          )
    `
	tag, err := r.db.Exec(ctx, query, investmentID)
	if err != nil {
		zap.L().Error("can't complete investment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

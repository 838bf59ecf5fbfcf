package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PhoneNumber  string    `db:"phone_number"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	ReferralCode string    `db:"referral_code"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wallet struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	Available       decimal.Decimal `db:"available"`
	Investable      decimal.Decimal `db:"investable"`
	LockedPrincipal decimal.Decimal `db:"locked_principal"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type WalletTransaction struct {
	ID           int             `db:"id"`
	WalletID     int             `db:"wallet_id"`
	Type         string          `db:"type"`
	Direction    string          `db:"direction"`
	Amount       decimal.Decimal `db:"amount"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	Metadata     map[string]any  `db:"metadata"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Deposit struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	PhoneNumber string          `db:"phone_number"`
	Message     string          `db:"message"`
	Status      string          `db:"status"`
	ApprovedBy  *int            `db:"approved_by"`
	ApprovedAt  *time.Time      `db:"approved_at"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Payout struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	PhoneNumber string          `db:"phone_number"`
	Status      string          `db:"status"`
	ApprovedBy  *int            `db:"approved_by"`
	ApprovedAt  *time.Time      `db:"approved_at"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Package struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	Price        decimal.Decimal `db:"price"`
	DailyReturn  decimal.Decimal `db:"daily_return"`
	DurationDays int             `db:"duration_days"`
	IsActive     bool            `db:"is_active"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Investment struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	PackageID   int             `db:"package_id"`
	Principal   decimal.Decimal `db:"principal"`
	DailyReturn decimal.Decimal `db:"daily_return"`
	Status      string          `db:"status"`
	TotalEarned decimal.Decimal `db:"total_earned"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     time.Time       `db:"end_date"`
	LockedAt    time.Time       `db:"locked_at"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Earning struct {
	ID           int             `db:"id"`
	InvestmentID int             `db:"investment_id"`
	DayIndex     int             `db:"day_index"`
	Amount       decimal.Decimal `db:"amount"`
	Status       string          `db:"status"`
	StartedAt    *time.Time      `db:"started_at"`
	CreditedAt   *time.Time      `db:"credited_at"`
}

// DueEarning is an earning joined with the owner of its investment, as fetched
// by the accrual sweep.
type DueEarning struct {
	Earning
	UserID int `db:"user_id"`
}

// InvestmentAdminView joins an investment with its owner and package for the
// admin listing.
type InvestmentAdminView struct {
	Investment
	Username    string `db:"username"`
	Email       string `db:"email"`
	PackageName string `db:"package_name"`
}

type Referral struct {
	ID             int             `db:"id"`
	ReferrerID     int             `db:"referrer_id"`
	ReferredUserID int             `db:"referred_user_id"`
	InvestmentID   *int            `db:"investment_id"`
	RewardAmount   decimal.Decimal `db:"reward_amount"`
	CreatedAt      time.Time       `db:"created_at"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInvestmentRequestDTO struct {
	PackageID int `json:"packageId" example:"2"`
}

type StartEarningRequestDTO struct {
	EarningID int `json:"earningId" example:"15"`
}

type EarningResponseDTO struct {
	ID         int             `json:"id" example:"15"`
	DayIndex   int             `json:"dayIndex" example:"3"`
	Amount     decimal.Decimal `json:"amount" example:"100"`
	Status     string          `json:"status" example:"PENDING"`
	StartedAt  *time.Time      `json:"startedAt,omitempty"`
	CreditedAt *time.Time      `json:"creditedAt,omitempty"`
}

type InvestmentResponseDTO struct {
	ID          int                  `json:"id" example:"4"`
	PackageID   int                  `json:"packageId" example:"2"`
	Principal   decimal.Decimal      `json:"principal" example:"1000"`
	DailyReturn decimal.Decimal      `json:"dailyReturn" example:"100"`
	Status      string               `json:"status" example:"ACTIVE"`
	TotalEarned decimal.Decimal      `json:"totalEarned" example:"300"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     time.Time            `json:"endDate"`
	Earnings    []EarningResponseDTO `json:"earnings,omitempty"`
}

type InvestmentAdminResponseDTO struct {
	ID          int             `json:"id" example:"4"`
	UserID      int             `json:"userId" example:"1"`
	Username    string          `json:"username" example:"jane"`
	Email       string          `json:"email" example:"jane@example.com"`
	PackageName string          `json:"packageName" example:"Starter"`
	Principal   decimal.Decimal `json:"principal" example:"1000"`
	DailyReturn decimal.Decimal `json:"dailyReturn" example:"100"`
	Status      string          `json:"status" example:"ACTIVE"`
	TotalEarned decimal.Decimal `json:"totalEarned" example:"300"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
}

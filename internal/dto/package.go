package dto

import "github.com/shopspring/decimal"

type PackageRequestDTO struct {
	Name         string          `json:"name" example:"Starter"`
	Price        decimal.Decimal `json:"price" example:"1000"`
	DailyReturn  decimal.Decimal `json:"dailyReturn" example:"100"`
	DurationDays int             `json:"durationDays" example:"30"`
	IsActive     bool            `json:"isActive" example:"true"`
}

type PackageResponseDTO struct {
	ID           int             `json:"id" example:"2"`
	Name         string          `json:"name" example:"Starter"`
	Price        decimal.Decimal `json:"price" example:"1000"`
	DailyReturn  decimal.Decimal `json:"dailyReturn" example:"100"`
	DurationDays int             `json:"durationDays" example:"30"`
	IsActive     bool            `json:"isActive" example:"true"`
}

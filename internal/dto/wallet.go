package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Available       decimal.Decimal `json:"available" example:"500.5"`
	Investable      decimal.Decimal `json:"investable" example:"1000"`
	LockedPrincipal decimal.Decimal `json:"lockedPrincipal" example:"2000"`
}

type WalletTransactionResponseDTO struct {
	ID           int             `json:"id" example:"42"`
	Type         string          `json:"type" example:"EARNING_CREDIT"`
	Direction    string          `json:"direction" example:"CREDIT"`
	Amount       decimal.Decimal `json:"amount" example:"100"`
	BalanceAfter decimal.Decimal `json:"balanceAfter" example:"600.5"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"createdAt" example:"2024-06-09T16:09:57+03:00"`
}

type AdjustBalancesRequestDTO struct {
	DeltaAvailable  decimal.Decimal `json:"deltaAvailable" example:"100"`
	DeltaInvestable decimal.Decimal `json:"deltaInvestable" example:"-50"`
}

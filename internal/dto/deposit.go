package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDepositRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" example:"500"`
	PhoneNumber string          `json:"phoneNumber" example:"+254712345678"`
	Message     string          `json:"message" example:"QFC8XK2M1P Confirmed. Ksh500.00 sent"`
}

type DepositResponseDTO struct {
	ID          int             `json:"id" example:"7"`
	UserID      int             `json:"userId" example:"1"`
	Amount      decimal.Decimal `json:"amount" example:"500"`
	PhoneNumber string          `json:"phoneNumber" example:"+254712345678"`
	Message     string          `json:"message,omitempty"`
	Status      string          `json:"status" example:"PENDING"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-06-09T16:09:57+03:00"`
}

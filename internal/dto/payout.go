package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePayoutRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" example:"200"`
	PhoneNumber string          `json:"phoneNumber" example:"+254712345678"`
}

type PayoutResponseDTO struct {
	ID          int             `json:"id" example:"3"`
	UserID      int             `json:"userId" example:"1"`
	Amount      decimal.Decimal `json:"amount" example:"200"`
	PhoneNumber string          `json:"phoneNumber" example:"+254712345678"`
	Status      string          `json:"status" example:"PENDING"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-06-09T16:09:57+03:00"`
}

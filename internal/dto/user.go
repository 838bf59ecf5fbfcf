package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	Email        string    `json:"email" example:"jane@example.com"`
	Username     string    `json:"username" example:"jane"`
	PhoneNumber  string    `json:"phoneNumber" example:"+254712345678"`
	Role         string    `json:"role" example:"USER"`
	ReferralCode string    `json:"referralCode" example:"REF-1A2B3C4D"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-06-09T16:09:57+03:00"`
}

type ReferralResponseDTO struct {
	ReferredUserID int             `json:"referredUserId" example:"7"`
	RewardAmount   decimal.Decimal `json:"rewardAmount" example:"100"`
	Rewarded       bool            `json:"rewarded" example:"true"`
	CreatedAt      time.Time       `json:"createdAt" example:"2024-06-09T16:09:57+03:00"`
}

type ProfileResponseDTO struct {
	User             UserResponseDTO       `json:"user"`
	Wallet           WalletResponseDTO     `json:"wallet"`
	Referrals        []ReferralResponseDTO `json:"referrals"`
	ReferralEarnings decimal.Decimal       `json:"referralEarnings" example:"200"`
}

package dto

type RegisterRequestDTO struct {
	Email        string `json:"email" example:"jane@example.com"`
	Username     string `json:"username" example:"jane"`
	PhoneNumber  string `json:"phoneNumber" example:"+254712345678"`
	Password     string `json:"password" example:"s3cret"`
	ReferralCode string `json:"referralCode,omitempty" example:"REF-1A2B3C4D"`
}

type LoginRequestDTO struct {
	Identifier string `json:"identifier" example:"jane@example.com"`
	Password   string `json:"password" example:"s3cret"`
}

type AuthResponseDTO struct {
	Token        string `json:"token"`
	UserID       int    `json:"userId" example:"1"`
	Role         string `json:"role" example:"USER"`
	ReferralCode string `json:"referralCode" example:"REF-1A2B3C4D"`
}

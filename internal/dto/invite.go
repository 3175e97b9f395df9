package dto

type RedeemInviteRequestDTO struct {
	Code string `json:"code" validate:"required" example:"ZEST1A2B3C"`
}

type RedeemInviteResponseDTO struct {
	Message string `json:"message"`
	Balance int64  `json:"balance" example:"150"`
}

package dto

import "time"

type BalanceResponseDTO struct {
	Balance    int64  `json:"balance" example:"400"`
	Points     int64  `json:"points" example:"270"`
	InviteCode string `json:"invite_code" example:"ZEST1A2B3C"`
}

type TransactionResponseDTO struct {
	ID          int       `json:"id" example:"13"`
	Amount      int64     `json:"amount" example:"-100"`
	Kind        string    `json:"kind" example:"stake"`
	Description string    `json:"description" example:"Bet on Will it rain tomorrow?"`
	CreatedAt   time.Time `json:"created_at" example:"2025-06-15T12:00:00Z"`
}

type DailyZestRequestDTO struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"50"`
}

type DailyZestResponseDTO struct {
	Message string `json:"message"`
	Granted int64  `json:"granted" example:"50"`
	Balance int64  `json:"balance" example:"150"`
}

type PurchaseRequestDTO struct {
	Amount  int64  `json:"amount" validate:"required,gt=0" example:"500"`
	Voucher string `json:"voucher" validate:"required" example:"2377225624"`
}

type PurchaseResponseDTO struct {
	Message string `json:"message"`
	Balance int64  `json:"balance" example:"900"`
}

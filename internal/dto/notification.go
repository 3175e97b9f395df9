package dto

import "time"

type NotificationResponseDTO struct {
	ID           int       `json:"id" example:"21"`
	Title        string    `json:"title" example:"Bet Resolved"`
	Message      string    `json:"message" example:"You won the bet \"Will it rain tomorrow?\"!"`
	Kind         string    `json:"kind" example:"bet_result"`
	IsRead       bool      `json:"is_read"`
	RelatedBetID *int      `json:"related_bet_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" example:"2025-06-15T12:00:00Z"`
}

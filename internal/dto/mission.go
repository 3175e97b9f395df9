package dto

import "time"

type MissionResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	Title       string     `json:"title" example:"Place your first bet"`
	Description string     `json:"description,omitempty"`
	Reward      int64      `json:"reward" example:"50"`
	Status      string     `json:"status" example:"open"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

package dto

import "time"

type ProjectResponseDTO struct {
	ID          int        `json:"id" example:"3"`
	Name        string     `json:"name" example:"Clean Water Fund"`
	Description string     `json:"description,omitempty"`
	Amount      int64      `json:"amount" example:"1200"`
	Featured    bool       `json:"featured" example:"true"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

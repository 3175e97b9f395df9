package dto

import "time"

type RecommendationResponseDTO struct {
	ID               int       `json:"id" example:"11"`
	Kind             string    `json:"kind" example:"bet"`
	Score            float64   `json:"score" example:"0.87"`
	Reason           string    `json:"reason" example:"Matches your betting style: Will it rain tomorrow?"`
	RelatedBetID     *int      `json:"related_bet_id,omitempty"`
	RelatedMissionID *int      `json:"related_mission_id,omitempty"`
	RelatedUserID    *int      `json:"related_user_id,omitempty"`
	IsShown          bool      `json:"is_shown"`
	IsClicked        bool      `json:"is_clicked"`
	ExpiresAt        time.Time `json:"expires_at" example:"2025-06-22T12:00:00Z"`
}

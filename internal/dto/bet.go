package dto

import "time"

type CreateBetRequestDTO struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description"`
	MinStake    int64     `json:"min_stake" example:"10"`
	MaxStake    int64     `json:"max_stake" example:"1000"`
	EndDate     time.Time `json:"end_date" example:"2025-07-01T18:00:00Z"`
	Scores      ScoresDTO `json:"scores"`
}

type ScoresDTO struct {
	Strategic   float64 `json:"strategic" example:"0.7"`
	Creative    float64 `json:"creative" example:"0.2"`
	Social      float64 `json:"social" example:"0.5"`
	Competitive float64 `json:"competitive" example:"0.8"`
	Quick       float64 `json:"quick" example:"0.3"`
}

type BetResponseDTO struct {
	ID                int       `json:"id" example:"7"`
	Title             string    `json:"title" example:"Will it rain tomorrow?"`
	Description       string    `json:"description,omitempty"`
	CreatorID         int       `json:"creator_id" example:"1"`
	MinStake          int64     `json:"min_stake" example:"10"`
	MaxStake          int64     `json:"max_stake" example:"1000"`
	TotalPool         int64     `json:"total_pool" example:"270"`
	EndDate           time.Time `json:"end_date" example:"2025-07-01T18:00:00Z"`
	IsResolved        bool      `json:"is_resolved"`
	WinningPrediction *string   `json:"winning_prediction,omitempty"`
}

type PlaceBetRequestDTO struct {
	Amount     int64  `json:"amount" validate:"required,gt=0" example:"100"`
	Prediction string `json:"prediction" validate:"required" example:"yes"`
}

type PlaceBetResponseDTO struct {
	Message     string `json:"message"`
	PlacementID int    `json:"placement_id" example:"42"`
	Balance     int64  `json:"balance" example:"400"`
}

type ResolveBetRequestDTO struct {
	WinningPrediction string `json:"winning_prediction" validate:"required" example:"yes"`
}

type PlacementResponseDTO struct {
	ID         int       `json:"id" example:"42"`
	BetID      int       `json:"bet_id" example:"7"`
	Amount     int64     `json:"amount" example:"100"`
	Prediction string    `json:"prediction" example:"yes"`
	IsWinner   *bool     `json:"is_winner,omitempty"`
	CreatedAt  time.Time `json:"created_at" example:"2025-06-15T12:00:00Z"`
}

type ToggleLikeResponseDTO struct {
	Liked bool `json:"liked" example:"true"`
}

package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message    string `json:"message"`
	InviteCode string `json:"invite_code" example:"ZEST1A2B3C"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type MeResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	Username   string    `json:"username" example:"alice"`
	Balance    int64     `json:"balance" example:"400"`
	Points     int64     `json:"points" example:"120"`
	InviteCode string    `json:"invite_code" example:"ZEST1A2B3C"`
	Prefs      ScoresDTO `json:"prefs"`
}

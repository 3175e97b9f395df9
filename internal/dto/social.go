package dto

import "time"

type CreatePostRequestDTO struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type PostResponseDTO struct {
	ID        int       `json:"id" example:"5"`
	UserID    int       `json:"user_id" example:"1"`
	Content   string    `json:"content" example:"won big today"`
	Likes     int       `json:"likes" example:"3"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-15T12:00:00Z"`
}

type CreateCommentRequestDTO struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type CommentResponseDTO struct {
	ID        int       `json:"id" example:"9"`
	PostID    int       `json:"post_id" example:"5"`
	UserID    int       `json:"user_id" example:"2"`
	Content   string    `json:"content" example:"nice"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-15T12:05:00Z"`
}

type FriendRequestDTO struct {
	AddresseeID int `json:"addressee_id" validate:"required" example:"2"`
}

type FriendRespondRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected" example:"accepted"`
}

type FriendshipResponseDTO struct {
	ID          int    `json:"id" example:"3"`
	RequesterID int    `json:"requester_id" example:"1"`
	AddresseeID int    `json:"addressee_id" example:"2"`
	Status      string `json:"status" example:"pending"`
}

type LeaderboardEntryDTO struct {
	UserID   int    `json:"user_id" example:"1"`
	Username string `json:"username" example:"alice"`
	Points   int64  `json:"points" example:"900"`
}

type UserSummaryDTO struct {
	ID       int    `json:"id" example:"2"`
	Username string `json:"username" example:"bob"`
	Points   int64  `json:"points" example:"500"`
}

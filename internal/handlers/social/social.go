package social

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/socialservice"
	"github.com/zestbet/zestbet/pkg/auth"
	"github.com/zestbet/zestbet/pkg/utils"
)

//go:generate mockgen -source=social.go -destination=mocks.go -package=social

type Service interface {
	CreatePost(ctx context.Context, userID int, content string) (*domain.SocialPost, error)
	ListPosts(ctx context.Context, limit int) ([]domain.SocialPost, error)
	AddComment(ctx context.Context, postID, userID int, content string) (*domain.Comment, error)
	ListComments(ctx context.Context, postID int) ([]domain.Comment, error)
	TogglePostLike(ctx context.Context, postID, userID int) (bool, error)
	RequestFriend(ctx context.Context, requesterID, addresseeID int) (*domain.Friendship, error)
	RespondFriend(ctx context.Context, userID, friendshipID int, status string) error
	ListFriendships(ctx context.Context, userID int) ([]domain.Friendship, error)
	ListFriends(ctx context.Context, userID int) ([]domain.User, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.User, error)
}

type SocialHandler struct {
	socialService Service
}

func New(socialService Service) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// CreatePost godoc
//
//	@Summary		Create a feed post
//	@Tags			Social
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePostRequestDTO	true	"Post content"
//	@Success		201		{object}	dto.PostResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/social/posts [post]
func (h *SocialHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	post, err := h.socialService.CreatePost(r.Context(), userID, req.Content)
	if err != nil {
		if errors.Is(err, socialservice.ErrEmptyContent) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPostDTO(post))
}

// ListPosts godoc
//
//	@Summary		Get the social feed
//	@Tags			Social
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max items"	default(50)
//	@Success		200		{array}		dto.PostResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/social/posts [get]
func (h *SocialHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	posts, err := h.socialService.ListPosts(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	resp := make([]dto.PostResponseDTO, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostDTO(&posts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AddComment godoc
//
//	@Summary		Comment on a post
//	@Tags			Social
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Post ID"
//	@Param			request	body		dto.CreateCommentRequestDTO	true	"Comment content"
//	@Success		201		{object}	dto.CommentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Post not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/social/posts/{id}/comments [post]
func (h *SocialHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	var req dto.CreateCommentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.socialService.AddComment(r.Context(), postID, userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, socialservice.ErrEmptyContent):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, socialservice.ErrPostNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CommentResponseDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	})
}

// ListComments godoc
//
//	@Summary		List comments on a post
//	@Tags			Social
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Post ID"
//	@Success		200	{array}		dto.CommentResponseDTO
//	@Failure		404	{object}	utils.Response	"Post not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/social/posts/{id}/comments [get]
func (h *SocialHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	comments, err := h.socialService.ListComments(r.Context(), postID)
	if err != nil {
		if errors.Is(err, socialservice.ErrPostNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.CommentResponseDTO, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, dto.CommentResponseDTO{
			ID:        c.ID,
			PostID:    c.PostID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ToggleLike godoc
//
//	@Summary		Like or unlike a post
//	@Tags			Social
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Post ID"
//	@Success		200	{object}	dto.ToggleLikeResponseDTO
//	@Failure		404	{object}	utils.Response	"Post not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/social/posts/{id}/like [post]
func (h *SocialHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	liked, err := h.socialService.TogglePostLike(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, socialservice.ErrPostNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ToggleLikeResponseDTO{Liked: liked})
}

// RequestFriend godoc
//
//	@Summary		Send a friend request
//	@Tags			Friends
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FriendRequestDTO	true	"Addressee"
//	@Success		201		{object}	dto.FriendshipResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Request already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/friends/requests [post]
func (h *SocialHandler) RequestFriend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.FriendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	friendship, err := h.socialService.RequestFriend(r.Context(), userID, req.AddresseeID)
	if err != nil {
		switch {
		case errors.Is(err, socialservice.ErrSelfFriendship):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, socialservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, socialservice.ErrAlreadyRequested):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FriendshipResponseDTO{
		ID:          friendship.ID,
		RequesterID: friendship.RequesterID,
		AddresseeID: friendship.AddresseeID,
		Status:      friendship.Status,
	})
}

// RespondFriend godoc
//
//	@Summary		Accept or reject a friend request
//	@Tags			Friends
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Friendship ID"
//	@Param			request	body		dto.FriendRespondRequestDTO	true	"accepted or rejected"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Not the addressee"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Already handled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/friends/requests/{id} [post]
func (h *SocialHandler) RespondFriend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	friendshipID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid friendship id")
		return
	}
	var req dto.FriendRespondRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.socialService.RespondFriend(r.Context(), userID, friendshipID, req.Status); err != nil {
		switch {
		case errors.Is(err, socialservice.ErrInvalidFriendReply):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, socialservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, socialservice.ErrNotAddressee):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, socialservice.ErrRequestNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Friend request " + req.Status})
}

// ListFriends godoc
//
//	@Summary		List accepted friends
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserSummaryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/friends [get]
func (h *SocialHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	friends, err := h.socialService.ListFriends(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch friends")
		return
	}
	resp := make([]dto.UserSummaryDTO, 0, len(friends))
	for _, f := range friends {
		resp = append(resp, dto.UserSummaryDTO{ID: f.ID, Username: f.Username, Points: f.Points})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListFriendships godoc
//
//	@Summary		List friendships including pending requests
//	@Tags			Friends
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.FriendshipResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/friends/requests [get]
func (h *SocialHandler) ListFriendships(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	friendships, err := h.socialService.ListFriendships(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch friend requests")
		return
	}
	resp := make([]dto.FriendshipResponseDTO, 0, len(friendships))
	for _, f := range friendships {
		resp = append(resp, dto.FriendshipResponseDTO{
			ID:          f.ID,
			RequesterID: f.RequesterID,
			AddresseeID: f.AddresseeID,
			Status:      f.Status,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Leaderboard godoc
//
//	@Summary		Points leaderboard
//	@Tags			Social
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max entries"	default(10)
//	@Success		200		{array}		dto.LeaderboardEntryDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *SocialHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	top, err := h.socialService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	resp := make([]dto.LeaderboardEntryDTO, 0, len(top))
	for _, u := range top {
		resp = append(resp, dto.LeaderboardEntryDTO{UserID: u.ID, Username: u.Username, Points: u.Points})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toPostDTO(post *domain.SocialPost) dto.PostResponseDTO {
	return dto.PostResponseDTO{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		Likes:     post.Likes,
		CreatedAt: post.CreatedAt,
	}
}

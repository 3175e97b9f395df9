package notifications

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/notifyservice"
	"github.com/zestbet/zestbet/pkg/auth"
	"github.com/zestbet/zestbet/pkg/utils"
)

//go:generate mockgen -source=notifications.go -destination=mocks.go -package=notifications

type Service interface {
	List(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int) error
	MarkAllRead(ctx context.Context, userID int) error
}

type NotificationHandler struct {
	notifyService Service
}

func New(notifyService Service) *NotificationHandler {
	return &NotificationHandler{
		notifyService: notifyService,
	}
}

// List godoc
//
//	@Summary		List notifications, newest first
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NotificationResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.notifyService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	resp := make([]dto.NotificationResponseDTO, 0, len(items))
	for _, n := range items {
		resp = append(resp, dto.NotificationResponseDTO{
			ID:           n.ID,
			Title:        n.Title,
			Message:      n.Message,
			Kind:         n.Kind,
			IsRead:       n.IsRead,
			RelatedBetID: n.RelatedBetID,
			CreatedAt:    n.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// MarkRead godoc
//
//	@Summary		Mark one notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Notification ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	notificationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}
	if err := h.notifyService.MarkRead(r.Context(), notificationID, userID); err != nil {
		if errors.Is(err, notifyservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Notification marked as read"})
}

// MarkAllRead godoc
//
//	@Summary		Mark every notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.notifyService.MarkAllRead(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "All notifications marked as read"})
}

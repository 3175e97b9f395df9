package invite

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/inviteservice"
	"github.com/zestbet/zestbet/pkg/auth"
	"github.com/zestbet/zestbet/pkg/utils"
)

//go:generate mockgen -source=invite.go -destination=mocks.go -package=invite

type Service interface {
	Redeem(ctx context.Context, userID int, code string) (int64, error)
}

type InviteHandler struct {
	inviteService Service
}

func New(inviteService Service) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// Redeem godoc
//
//	@Summary		Redeem an invite code
//	@Description	Credits both the invitee and the code owner. Each account can redeem one code, once.
//	@Tags			Invites
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemInviteRequestDTO	true	"Invite code"
//	@Success		200		{object}	dto.RedeemInviteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Unknown code"
//	@Failure		409		{object}	utils.Response	"Already redeemed or own code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invites/redeem [post]
func (h *InviteHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedeemInviteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	balance, err := h.inviteService.Redeem(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, inviteservice.ErrInvalidCode):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, inviteservice.ErrSelfReferral), errors.Is(err, inviteservice.ErrAlreadyRedeemed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemInviteResponseDTO{
		Message: "Invite code redeemed",
		Balance: balance,
	})
}

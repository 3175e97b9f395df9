package bets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/betservice"
	"github.com/zestbet/zestbet/pkg/auth"
	"github.com/zestbet/zestbet/pkg/utils"
)

//go:generate mockgen -source=bets.go -destination=mocks.go -package=bets

type Service interface {
	CreateBet(ctx context.Context, bet *domain.Bet) (*domain.Bet, error)
	GetBet(ctx context.Context, betID int) (*domain.Bet, error)
	ListOpen(ctx context.Context) ([]domain.Bet, error)
	ListEnded(ctx context.Context) ([]domain.Bet, error)
	PlaceBet(ctx context.Context, userID, betID int, amount int64, prediction string) (*domain.BetPlacement, int64, error)
	ResolveBet(ctx context.Context, userID, betID int, winningPrediction string) error
	ToggleLike(ctx context.Context, betID, userID int) (bool, error)
	ListPlacements(ctx context.Context, userID int) ([]domain.BetPlacement, error)
}

type BetHandler struct {
	betService Service
}

func New(betService Service) *BetHandler {
	return &BetHandler{
		betService: betService,
	}
}

// CreateBet godoc
//
//	@Summary		Create a bet
//	@Description	Open a new bet with stake bounds, an end date and trait scores used for recommendations
//	@Tags			Bets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBetRequestDTO	true	"Bet payload"
//	@Success		201		{object}	dto.BetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [post]
func (h *BetHandler) CreateBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	bet, err := h.betService.CreateBet(r.Context(), &domain.Bet{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   userID,
		MinStake:    req.MinStake,
		MaxStake:    req.MaxStake,
		EndDate:     req.EndDate,
		Scores: domain.Vector{
			Strategic:   req.Scores.Strategic,
			Creative:    req.Scores.Creative,
			Social:      req.Scores.Social,
			Competitive: req.Scores.Competitive,
			Quick:       req.Scores.Quick,
		},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBetDTO(bet))
}

// ListOpen godoc
//
//	@Summary		List open bets
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BetResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [get]
func (h *BetHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	bets, err := h.betService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBetDTOs(bets))
}

// ListEnded godoc
//
//	@Summary		List ended bets
//	@Description	Bets past their end date or already resolved
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BetResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/ended [get]
func (h *BetHandler) ListEnded(w http.ResponseWriter, r *http.Request) {
	bets, err := h.betService.ListEnded(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBetDTOs(bets))
}

// GetBet godoc
//
//	@Summary		Get one bet
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Bet ID"
//	@Success		200	{object}	dto.BetResponseDTO
//	@Failure		404	{object}	utils.Response	"Bet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id} [get]
func (h *BetHandler) GetBet(w http.ResponseWriter, r *http.Request) {
	betID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}
	bet, err := h.betService.GetBet(r.Context(), betID)
	if err != nil {
		if errors.Is(err, betservice.ErrBetNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBetDTO(bet))
}

// PlaceBet godoc
//
//	@Summary		Place a bet
//	@Description	Stake Zest on a prediction. The platform keeps a 10% fee and donates a fifth of it to the featured impact project.
//	@Tags			Bets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Bet ID"
//	@Param			request	body		dto.PlaceBetRequestDTO	true	"Placement payload"
//	@Success		200		{object}	dto.PlaceBetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Bet not found"
//	@Failure		409		{object}	utils.Response	"Bet closed or already placed"
//	@Failure		422		{object}	utils.Response	"Stake out of range"
//	@Failure		429		{object}	utils.Response	"Daily limit exceeded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id}/place [post]
func (h *BetHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	betID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}
	var req dto.PlaceBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	placement, balance, err := h.betService.PlaceBet(r.Context(), userID, betID, req.Amount, req.Prediction)
	if err != nil {
		switch {
		case errors.Is(err, betservice.ErrBetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, betservice.ErrBetClosed), errors.Is(err, betservice.ErrAlreadyPlaced):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, betservice.ErrStakeOutOfRange):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, betservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, betservice.ErrDailyLimitExceeded):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, betservice.ErrPredictionRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlaceBetResponseDTO{
		Message:     "Bet placed",
		PlacementID: placement.ID,
		Balance:     balance,
	})
}

// ResolveBet godoc
//
//	@Summary		Resolve a bet
//	@Description	Stamp the winning prediction and pay the pool out to winners proportionally to their stakes. Creator only.
//	@Tags			Bets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Bet ID"
//	@Param			request	body		dto.ResolveBetRequestDTO	true	"Resolution payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Not the creator"
//	@Failure		404		{object}	utils.Response	"Bet not found"
//	@Failure		409		{object}	utils.Response	"Already resolved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id}/resolve [post]
func (h *BetHandler) ResolveBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	betID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}
	var req dto.ResolveBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.betService.ResolveBet(r.Context(), userID, betID, req.WinningPrediction); err != nil {
		switch {
		case errors.Is(err, betservice.ErrBetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, betservice.ErrNotCreator):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, betservice.ErrBetResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, betservice.ErrPredictionRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bet resolved"})
}

// ToggleLike godoc
//
//	@Summary		Like or unlike a bet
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Bet ID"
//	@Success		200	{object}	dto.ToggleLikeResponseDTO
//	@Failure		404	{object}	utils.Response	"Bet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{id}/like [post]
func (h *BetHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	betID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}
	liked, err := h.betService.ToggleLike(r.Context(), betID, userID)
	if err != nil {
		if errors.Is(err, betservice.ErrBetNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ToggleLikeResponseDTO{Liked: liked})
}

// ListPlacements godoc
//
//	@Summary		List my placements
//	@Tags			Bets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PlacementResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/placements [get]
func (h *BetHandler) ListPlacements(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	placements, err := h.betService.ListPlacements(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PlacementResponseDTO, 0, len(placements))
	for _, p := range placements {
		resp = append(resp, dto.PlacementResponseDTO{
			ID:         p.ID,
			BetID:      p.BetID,
			Amount:     p.Amount,
			Prediction: p.Prediction,
			IsWinner:   p.IsWinner,
			CreatedAt:  p.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toBetDTO(bet *domain.Bet) dto.BetResponseDTO {
	return dto.BetResponseDTO{
		ID:                bet.ID,
		Title:             bet.Title,
		Description:       bet.Description,
		CreatorID:         bet.CreatorID,
		MinStake:          bet.MinStake,
		MaxStake:          bet.MaxStake,
		TotalPool:         bet.TotalPool,
		EndDate:           bet.EndDate,
		IsResolved:        bet.IsResolved,
		WinningPrediction: bet.WinningPrediction,
	}
}

func toBetDTOs(bets []domain.Bet) []dto.BetResponseDTO {
	resp := make([]dto.BetResponseDTO, 0, len(bets))
	for i := range bets {
		resp = append(resp, toBetDTO(&bets[i]))
	}
	return resp
}

package recommendations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/recommendservice"
	"github.com/zestbet/zestbet/pkg/auth"
	"github.com/zestbet/zestbet/pkg/utils"
)

//go:generate mockgen -source=recommendations.go -destination=mocks.go -package=recommendations

type Service interface {
	GetRecommendations(ctx context.Context, userID int, kind string, limit int) ([]domain.Recommendation, error)
	PersonalizedBets(ctx context.Context, userID int, limit int) ([]domain.Bet, error)
	MarkShown(ctx context.Context, recID, userID int) error
	MarkClicked(ctx context.Context, recID, userID int) error
}

type RecommendationHandler struct {
	recommendService Service
}

func New(recommendService Service) *RecommendationHandler {
	return &RecommendationHandler{
		recommendService: recommendService,
	}
}

// GetRecommendations godoc
//
//	@Summary		Get recommendations
//	@Description	Active recommendations of one kind, topped up when previous ones expired
//	@Tags			Recommendations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind	query		string	false	"bet, mission or friend"	default(bet)
//	@Param			limit	query		int		false	"Max items"					default(5)
//	@Success		200		{array}		dto.RecommendationResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown kind"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = domain.RecommendBet
	}
	switch kind {
	case domain.RecommendBet, domain.RecommendMission, domain.RecommendFriend:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown recommendation kind")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := h.recommendService.GetRecommendations(r.Context(), userID, kind, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recommendations")
		return
	}
	resp := make([]dto.RecommendationResponseDTO, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, dto.RecommendationResponseDTO{
			ID:               rec.ID,
			Kind:             rec.Kind,
			Score:            rec.Score,
			Reason:           rec.Reason,
			RelatedBetID:     rec.RelatedBetID,
			RelatedMissionID: rec.RelatedMissionID,
			RelatedUserID:    rec.RelatedUserID,
			IsShown:          rec.IsShown,
			IsClicked:        rec.IsClicked,
			ExpiresAt:        rec.ExpiresAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PersonalizedBets godoc
//
//	@Summary		Personalized bet feed
//	@Description	Open bets the user has not joined, ranked by preference match
//	@Tags			Recommendations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max items"	default(5)
//	@Success		200		{array}		dto.BetResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/recommendations/bets [get]
func (h *RecommendationHandler) PersonalizedBets(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	bets, err := h.recommendService.PersonalizedBets(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bets")
		return
	}
	resp := make([]dto.BetResponseDTO, 0, len(bets))
	for _, bet := range bets {
		resp = append(resp, dto.BetResponseDTO{
			ID:          bet.ID,
			Title:       bet.Title,
			Description: bet.Description,
			CreatorID:   bet.CreatorID,
			MinStake:    bet.MinStake,
			MaxStake:    bet.MaxStake,
			TotalPool:   bet.TotalPool,
			EndDate:     bet.EndDate,
			IsResolved:  bet.IsResolved,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// MarkShown godoc
//
//	@Summary		Mark a recommendation as shown
//	@Tags			Recommendations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Recommendation ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Recommendation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/recommendations/{id}/shown [post]
func (h *RecommendationHandler) MarkShown(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, h.recommendService.MarkShown, "Recommendation marked as shown")
}

// MarkClicked godoc
//
//	@Summary		Mark a recommendation as clicked
//	@Tags			Recommendations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Recommendation ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Recommendation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/recommendations/{id}/clicked [post]
func (h *RecommendationHandler) MarkClicked(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, h.recommendService.MarkClicked, "Recommendation marked as clicked")
}

func (h *RecommendationHandler) mark(w http.ResponseWriter, r *http.Request, fn func(context.Context, int, int) error, message string) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	recID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recommendation id")
		return
	}
	if err := fn(r.Context(), recID, userID); err != nil {
		if errors.Is(err, recommendservice.ErrRecommendationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

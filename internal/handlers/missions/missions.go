package missions

import (
	"context"
	"net/http"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/pkg/auth"
	"github.com/zestbet/zestbet/pkg/utils"
)

//go:generate mockgen -source=missions.go -destination=mocks.go -package=missions

type Service interface {
	ListForUser(ctx context.Context, userID int) ([]domain.Mission, []domain.UserMission, error)
}

type MissionHandler struct {
	missionService Service
}

func New(missionService Service) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

// ListMissions godoc
//
//	@Summary		List missions with progress
//	@Description	All mission templates together with the authenticated user's completion state
//	@Tags			Missions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions [get]
func (h *MissionHandler) ListMissions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	missions, progress, err := h.missionService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch missions")
		return
	}

	byMission := make(map[int]domain.UserMission, len(progress))
	for _, um := range progress {
		byMission[um.MissionID] = um
	}

	resp := make([]dto.MissionResponseDTO, 0, len(missions))
	for _, m := range missions {
		item := dto.MissionResponseDTO{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Reward:      m.Reward,
			Status:      domain.MissionOpen,
		}
		if um, ok := byMission[m.ID]; ok {
			item.Status = um.Status
			item.CompletedAt = um.CompletedAt
		}
		resp = append(resp, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/projectservice"
	"github.com/zestbet/zestbet/pkg/utils"
)

//go:generate mockgen -source=projects.go -destination=mocks.go -package=projects

type Service interface {
	ListProjects(ctx context.Context) ([]domain.ImpactProject, error)
	Featured(ctx context.Context) (*domain.ImpactProject, error)
}

type ProjectHandler struct {
	projectService Service
}

func New(projectService Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects godoc
//
//	@Summary		List charity projects
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProjectResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects [get]
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	resp := make([]dto.ProjectResponseDTO, 0, len(projects))
	for i := range projects {
		resp = append(resp, toProjectDTO(&projects[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Featured godoc
//
//	@Summary		Current featured charity project
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProjectResponseDTO
//	@Failure		404	{object}	utils.Response	"No featured project"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects/featured [get]
func (h *ProjectHandler) Featured(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.Featured(r.Context())
	if err != nil {
		if errors.Is(err, projectservice.ErrNoFeaturedProject) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProjectDTO(project))
}

func toProjectDTO(p *domain.ImpactProject) dto.ProjectResponseDTO {
	return dto.ProjectResponseDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Amount:      p.Amount,
		Featured:    p.Featured,
		EndDate:     p.EndDate,
	}
}

package handler

import (
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

type TeamMemberHandler struct {
	team *service.TeamService
	log  *logger.Logger
}

func NewTeamMemberHandler(team *service.TeamService, log *logger.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{team: team, log: log.WithComponent("team_member_handler")}
}

type TeamMemberRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Role      string  `json:"role" binding:"required"`
	AvatarURL *string `json:"avatarUrl"`
}

type TeamMemberUpdateRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role"`
	AvatarURL *string `json:"avatarUrl"`
}

// List godoc
// @Summary      List team members
// @Tags         team-members
// @Produce      json
// @Success      200  {array}   model.TeamMember
// @Failure      401  {object}  ErrorResponse
// @Router       /team-members [get]
func (h *TeamMemberHandler) List(c *gin.Context) {
	members, err := h.team.ListTeamMembers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// Create godoc
// @Summary      Add a team member
// @Tags         team-members
// @Accept       json
// @Produce      json
// @Param        member  body      TeamMemberRequest  true  "Team member"
// @Success      201     {object}  model.TeamMember
// @Failure      400     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Router       /team-members [post]
func (h *TeamMemberHandler) Create(c *gin.Context) {
	var req TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.team.CreateTeamMember(c.Request.Context(), model.TeamMember{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *TeamMemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TeamMemberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.team.UpdateTeamMember(c.Request.Context(), id, model.TeamMemberPatch{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *TeamMemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.team.DeleteTeamMember(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

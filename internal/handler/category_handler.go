package handler

import (
	"encoding/json"
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CategoryHandler struct {
	team *service.TeamService
	log  *logger.Logger
}

func NewCategoryHandler(team *service.TeamService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{team: team, log: log.WithComponent("category_handler")}
}

type CategoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	ParentID *int64  `json:"parentId"`
	Color    *string `json:"color" binding:"omitempty,hexcolor"`
}

type CategoryUpdateRequest struct {
	Name     *string `json:"name"`
	ParentID *int64  `json:"parentId"`
	Color    *string `json:"color" binding:"omitempty,hexcolor"`
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   model.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.team.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category := model.Category{Name: req.Name, ParentID: req.ParentID}
	if req.Color != nil {
		category.Color = *req.Color
	}
	created, err := h.team.CreateCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CategoryUpdateRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondBindError(c, err)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondBindError(c, err)
		return
	}

	patch := model.CategoryPatch{
		Name:     req.Name,
		ParentID: req.ParentID,
		Color:    req.Color,
	}
	if v, ok := raw["parentId"]; ok && string(v) == "null" {
		patch.ClearParent = true
	}

	category, err := h.team.UpdateCategory(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.team.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

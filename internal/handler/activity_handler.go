package handler

import (
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activities *service.ActivityService
	log        *logger.Logger
}

func NewActivityHandler(activities *service.ActivityService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{activities: activities, log: log.WithComponent("activity_handler")}
}

// List godoc
// @Summary      Recent activity
// @Tags         activities
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries, default 50"
// @Success      200    {array}   model.Activity
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	limit, err := queryInt64(c, "limit")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	n := service.DefaultActivityLimit
	if limit != nil {
		n = int(*limit)
	}
	activities, err := h.activities.ListActivities(c.Request.Context(), n)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

package handler

import (
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/middleware"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

type DataHandler struct {
	data *service.DataService
	log  *logger.Logger
}

func NewDataHandler(data *service.DataService, log *logger.Logger) *DataHandler {
	return &DataHandler{data: data, log: log.WithComponent("data_handler")}
}

type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ClearAll godoc
// @Summary      Wipe all domain data and restore the default team
// @Tags         data
// @Produce      json
// @Success      200  {object}  ClearResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /data/clear-all [delete]
func (h *DataHandler) ClearAll(c *gin.Context) {
	h.log.LogSecurityEvent("data_cleared", c.GetString(middleware.UserIDKey), c.ClientIP(), nil)
	if err := h.data.ClearAllData(c.Request.Context()); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ClearResponse{Success: true, Message: "All data cleared successfully"})
}

package handler

import (
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

type TimeEntryHandler struct {
	tasks *service.TaskService
	log   *logger.Logger
}

func NewTimeEntryHandler(tasks *service.TaskService, log *logger.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{tasks: tasks, log: log.WithComponent("time_entry_handler")}
}

type TimeEntryRequest struct {
	TaskID      *int64   `json:"taskId" binding:"required"`
	MemberID    *int64   `json:"memberId" binding:"required"`
	Hours       *float64 `json:"hours" binding:"required"`
	Description *string  `json:"description"`
}

// List godoc
// @Summary      List time entries
// @Tags         time-entries
// @Produce      json
// @Param        taskId  query     int  false  "Only entries for this task"
// @Success      200     {array}   model.TimeEntry
// @Router       /time-entries [get]
func (h *TimeEntryHandler) List(c *gin.Context) {
	taskID, err := queryInt64(c, "taskId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	entries, err := h.tasks.ListTimeEntries(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary      Log time against a task
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Param        entry  body      TimeEntryRequest  true  "Time entry"
// @Success      201    {object}  model.TimeEntry
// @Failure      400    {object}  ErrorResponse
// @Router       /time-entries [post]
func (h *TimeEntryHandler) Create(c *gin.Context) {
	var req TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.tasks.LogTime(c.Request.Context(), service.LogTimeInput{
		TaskID:      *req.TaskID,
		MemberID:    *req.MemberID,
		Hours:       *req.Hours,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type TaskHandler struct {
	tasks *service.TaskService
	log   *logger.Logger
}

func NewTaskHandler(tasks *service.TaskService, log *logger.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, log: log.WithComponent("task_handler")}
}

// TaskRequest is the body of POST /tasks.
type TaskRequest struct {
	Title          string     `json:"title" binding:"required"`
	Description    *string    `json:"description"`
	Status         string     `json:"status" binding:"omitempty,taskstatus"`
	Priority       string     `json:"priority" binding:"omitempty,taskpriority"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours"`
	ActualHours    *float64   `json:"actualHours"`
	AssigneeID     *int64     `json:"assigneeId"`
	CategoryID     *int64     `json:"categoryId"`
	Position       *int       `json:"position"`
}

// TaskUpdateRequest is the body of PUT /tasks/:id. Absent fields are kept;
// an explicit null clears the nullable ones.
type TaskUpdateRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status" binding:"omitempty,taskstatus"`
	Priority       *string    `json:"priority" binding:"omitempty,taskpriority"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours"`
	ActualHours    *float64   `json:"actualHours"`
	AssigneeID     *int64     `json:"assigneeId"`
	CategoryID     *int64     `json:"categoryId"`
	Position       *int       `json:"position"`
}

// nullableFields maps JSON keys to the columns a null may clear.
var nullableFields = map[string]string{
	"description":    model.FieldDescription,
	"dueDate":        model.FieldDueDate,
	"estimatedHours": model.FieldEstimatedHours,
	"assigneeId":     model.FieldAssigneeID,
	"categoryId":     model.FieldCategoryID,
}

// List godoc
// @Summary      List tasks
// @Description  At most one filter applies: status, then assigneeId, then categoryId.
// @Tags         tasks
// @Produce      json
// @Param        status      query     string  false  "Task status"
// @Param        assigneeId  query     int     false  "Assignee id"
// @Param        categoryId  query     int     false  "Category id"
// @Success      200         {array}   model.TaskWithDetails
// @Failure      401         {object}  ErrorResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	filter := model.TaskFilter{Status: c.Query("status")}
	var err error
	if filter.AssigneeID, err = queryInt64(c, "assigneeId"); err != nil {
		respondError(c, h.log, err)
		return
	}
	if filter.CategoryID, err = queryInt64(c, "categoryId"); err != nil {
		respondError(c, h.log, err)
		return
	}

	tasks, err := h.tasks.ListTasks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetByID godoc
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  model.TaskWithDetails
// @Failure      404  {object}  ErrorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task  body      TaskRequest  true  "Task"
// @Success      201   {object}  model.TaskWithDetails
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), service.CreateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		AssigneeID:     req.AssigneeID,
		CategoryID:     req.CategoryID,
		Position:       req.Position,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Task id"
// @Param        task  body      TaskUpdateRequest  true  "Fields to change"
// @Success      200   {object}  model.TaskWithDetails
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondBindError(c, err)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondBindError(c, err)
		return
	}

	patch := model.TaskPatch{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		AssigneeID:     req.AssigneeID,
		CategoryID:     req.CategoryID,
		Position:       req.Position,
	}
	for key, column := range nullableFields {
		if v, ok := raw[key]; ok && string(v) == "null" {
			patch.Clear = append(patch.Clear, column)
		}
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Param        id   path  int  true  "Task id"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// PrepListHandler serves the daily prep-list endpoints.
type PrepListHandler struct {
	prepSvc service.PrepListService
}

// NewPrepListHandler creates a PrepListHandler.
func NewPrepListHandler(prepSvc service.PrepListService) *PrepListHandler {
	return &PrepListHandler{prepSvc: prepSvc}
}

// CreateTask adds a task to a day's prep list.
// POST /api/v1/prep-tasks
func (h *PrepListHandler) CreateTask(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.CreatePrepTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	task, err := h.prepSvc.CreateTask(c.Request.Context(), orgID, &req)
	if err != nil {
		h.handlePrepError(c, err)
		return
	}

	response.Created(c, task)
}

// ListTasks returns one day's prep list.
// GET /api/v1/prep-tasks?date=2026-03-02&station=grill
func (h *PrepListHandler) ListTasks(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.PrepListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	tasks, err := h.prepSvc.ListTasks(c.Request.Context(), orgID, &req)
	if err != nil {
		h.handlePrepError(c, err)
		return
	}

	response.OK(c, tasks)
}

// UpdateTask edits a prep task.
// PUT /api/v1/prep-tasks/:id
func (h *PrepListHandler) UpdateTask(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.UpdatePrepTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	task, err := h.prepSvc.UpdateTask(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		h.handlePrepError(c, err)
		return
	}

	response.OK(c, task)
}

// CompleteTask toggles a task's completion state.
// PUT /api/v1/prep-tasks/:id/complete
func (h *PrepListHandler) CompleteTask(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	task, err := h.prepSvc.CompleteTask(c.Request.Context(), orgID, c.Param("id"), userID, req.Completed)
	if err != nil {
		h.handlePrepError(c, err)
		return
	}

	response.OK(c, task)
}

// DeleteTask removes a prep task.
// DELETE /api/v1/prep-tasks/:id
func (h *PrepListHandler) DeleteTask(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	if err := h.prepSvc.DeleteTask(c.Request.Context(), orgID, c.Param("id")); err != nil {
		h.handlePrepError(c, err)
		return
	}

	response.OK(c, nil)
}

// CarryOverTasks copies a day's unfinished tasks onto another day.
// POST /api/v1/prep-tasks/carry-over
func (h *PrepListHandler) CarryOverTasks(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req struct {
		FromDate string `json:"from_date" binding:"required,datetime=2006-01-02"`
		ToDate   string `json:"to_date"   binding:"required,datetime=2006-01-02"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	count, err := h.prepSvc.CarryOverTasks(c.Request.Context(), orgID, req.FromDate, req.ToDate)
	if err != nil {
		h.handlePrepError(c, err)
		return
	}

	response.OK(c, gin.H{"carried_over": count})
}

func (h *PrepListHandler) handlePrepError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPrepTaskNotFound):
		response.NotFound(c, 16001, "prep task not found")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 16002, "date must be YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}

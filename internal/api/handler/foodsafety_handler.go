package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// FoodSafetyHandler serves the temperature-log and duty endpoints.
type FoodSafetyHandler struct {
	foodSafetySvc service.FoodSafetyService
	dutySvc       service.DutyService
}

// NewFoodSafetyHandler creates a FoodSafetyHandler.
func NewFoodSafetyHandler(foodSafetySvc service.FoodSafetyService, dutySvc service.DutyService) *FoodSafetyHandler {
	return &FoodSafetyHandler{foodSafetySvc: foodSafetySvc, dutySvc: dutySvc}
}

// ── temperature logs ──

// RecordTemperature records one temperature check.
// POST /api/v1/food-safety/temperatures
func (h *FoodSafetyHandler) RecordTemperature(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTemperatureLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	log, err := h.foodSafetySvc.RecordTemperature(c.Request.Context(), orgID, userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, log)
}

// ListTemperatureLogs returns checks, newest first.
// GET /api/v1/food-safety/temperatures?check_type=&from=&to=&page=&page_size=
func (h *FoodSafetyHandler) ListTemperatureLogs(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.TemperatureLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	logs, total, err := h.foodSafetySvc.ListTemperatureLogs(c.Request.Context(), orgID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	response.OKPage(c, logs, total, page, pageSize)
}

// ── duty assignments ──

// ResolveDuty answers who is on duty for both shifts of a day.
// GET /api/v1/food-safety/duty?date=2026-03-02 (defaults to today)
func (h *FoodSafetyHandler) ResolveDuty(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			response.BadRequest(c, 10001, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	resolved, err := h.dutySvc.ResolveDay(c.Request.Context(), orgID, date)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resolved)
}

// DefaultDuties lists the recurring default assignments.
// GET /api/v1/food-safety/duty/defaults
func (h *FoodSafetyHandler) DefaultDuties(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	defaults, err := h.dutySvc.DefaultDuties(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, defaults)
}

// AssignDuty sets a default or one-off duty assignment.
// PUT /api/v1/food-safety/duty
func (h *FoodSafetyHandler) AssignDuty(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AssignDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	assignment, err := h.dutySvc.AssignDuty(c.Request.Context(), orgID, userID, &req)
	if err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, assignment)
}

// ClearDuty removes a duty slot.
// DELETE /api/v1/food-safety/duty
func (h *FoodSafetyHandler) ClearDuty(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.ClearDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	if err := h.dutySvc.ClearDuty(c.Request.Context(), orgID, &req); err != nil {
		h.handleDutyError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *FoodSafetyHandler) handleDutyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDutySlotNotFound):
		response.NotFound(c, 17001, "duty slot not found")
	case errors.Is(err, service.ErrBadShift):
		response.BadRequest(c, 17002, "shift must be am or pm")
	case errors.Is(err, service.ErrMemberNotFound):
		response.BadRequest(c, 12001, "team member not found")
	default:
		response.InternalError(c)
	}
}

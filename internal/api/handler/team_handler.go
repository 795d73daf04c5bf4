package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// TeamHandler serves the team-member endpoints.
type TeamHandler struct {
	teamSvc service.TeamService
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// ListMembers lists everyone in the caller's organization.
// GET /api/v1/team
func (h *TeamHandler) ListMembers(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	members, err := h.teamSvc.ListMembers(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, members)
}

// GetCurrentMember returns the caller's own profile.
// GET /api/v1/team/me
func (h *TeamHandler) GetCurrentMember(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	member, err := h.teamSvc.GetMember(c.Request.Context(), orgID, userID)
	if err != nil {
		h.handleTeamError(c, err)
		return
	}

	response.OK(c, member)
}

// GetMember returns one member by id.
// GET /api/v1/team/:id
func (h *TeamHandler) GetMember(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	member, err := h.teamSvc.GetMember(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		h.handleTeamError(c, err)
		return
	}

	response.OK(c, member)
}

// UpdateProfile edits the caller's own profile.
// PUT /api/v1/team/me
func (h *TeamHandler) UpdateProfile(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	member, err := h.teamSvc.UpdateProfile(c.Request.Context(), orgID, userID, &req)
	if err != nil {
		h.handleTeamError(c, err)
		return
	}

	response.OK(c, member)
}

// ChangeRole changes a member's role.
// PUT /api/v1/team/:id/role
func (h *TeamHandler) ChangeRole(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	member, err := h.teamSvc.ChangeRole(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		h.handleTeamError(c, err)
		return
	}

	response.OK(c, member)
}

// RemoveMember removes a member from the organization.
// DELETE /api/v1/team/:id
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	if err := h.teamSvc.RemoveMember(c.Request.Context(), orgID, c.Param("id")); err != nil {
		h.handleTeamError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *TeamHandler) handleTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		response.NotFound(c, 12001, "team member not found")
	case errors.Is(err, service.ErrLastOwner):
		response.Conflict(c, 12002, "an organization must keep at least one owner")
	default:
		response.InternalError(c)
	}
}

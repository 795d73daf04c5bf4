package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// VendorHandler serves the supplier endpoints.
type VendorHandler struct {
	vendorSvc service.VendorService
}

// NewVendorHandler creates a VendorHandler.
func NewVendorHandler(vendorSvc service.VendorService) *VendorHandler {
	return &VendorHandler{vendorSvc: vendorSvc}
}

// CreateVendor adds a supplier.
// POST /api/v1/vendors
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	vendor, err := h.vendorSvc.CreateVendor(c.Request.Context(), orgID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, vendor)
}

// GetVendor returns one supplier.
// GET /api/v1/vendors/:id
func (h *VendorHandler) GetVendor(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorSvc.GetVendor(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.NotFound(c, 18001, "vendor not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, vendor)
}

// ListVendors lists all suppliers.
// GET /api/v1/vendors
func (h *VendorHandler) ListVendors(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	vendors, err := h.vendorSvc.ListVendors(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, vendors)
}

// UpdateVendor edits a supplier.
// PUT /api/v1/vendors/:id
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	vendor, err := h.vendorSvc.UpdateVendor(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.NotFound(c, 18001, "vendor not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, vendor)
}

// DeleteVendor removes a supplier.
// DELETE /api/v1/vendors/:id
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	if err := h.vendorSvc.DeleteVendor(c.Request.Context(), orgID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.NotFound(c, 18001, "vendor not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

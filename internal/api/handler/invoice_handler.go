package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/dto"
	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

// InvoiceHandler serves the supplier-invoice endpoints.
type InvoiceHandler struct {
	invoiceSvc service.InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(invoiceSvc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc}
}

// CreateInvoice records an invoice with its free-text lines.
// POST /api/v1/invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	invoice, err := h.invoiceSvc.CreateInvoice(c.Request.Context(), orgID, &req)
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.Created(c, invoice)
}

// GetInvoice returns one invoice with its lines.
// GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceSvc.GetInvoice(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, invoice)
}

// ListInvoices lists invoices, newest first.
// GET /api/v1/invoices?page=1&page_size=20
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	invoices, total, err := h.invoiceSvc.ListInvoices(c.Request.Context(), orgID, page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, invoices, total, page, pageSize)
}

// MatchInvoiceLines fuzzy-matches every line against the catalog.
// POST /api/v1/invoices/:id/match
func (h *InvoiceHandler) MatchInvoiceLines(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	candidates, err := h.invoiceSvc.MatchInvoiceLines(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, candidates)
}

// ConfirmLineMatch pins one line to a catalog ingredient and applies
// its price and stock effects.
// POST /api/v1/invoices/:id/lines/:lineId/confirm
func (h *InvoiceHandler) ConfirmLineMatch(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ConfirmLineMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	invoice, err := h.invoiceSvc.ConfirmLineMatch(c.Request.Context(), orgID, c.Param("id"), c.Param("lineId"), userID, &req)
	if err != nil {
		h.handleInvoiceError(c, err)
		return
	}

	response.OK(c, invoice)
}

func (h *InvoiceHandler) handleInvoiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvoiceNotFound):
		response.NotFound(c, 19001, "invoice not found")
	case errors.Is(err, service.ErrInvoiceLineNotFound):
		response.NotFound(c, 19002, "invoice line not found")
	case errors.Is(err, service.ErrVendorNotFound):
		response.BadRequest(c, 18001, "vendor not found")
	case errors.Is(err, service.ErrIngredientNotFound):
		response.BadRequest(c, 13001, "ingredient not found")
	default:
		response.InternalError(c)
	}
}

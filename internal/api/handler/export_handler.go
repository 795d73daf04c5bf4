package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chefos/backend/internal/service"
	"chefos/backend/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler serves the duty-roster export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportDutyRoster downloads the 7-day duty grid as an Excel workbook.
// GET /api/v1/export/duty-roster?start=2026-03-02 (defaults to today)
func (h *ExportHandler) ExportDutyRoster(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	start, ok := h.parseStart(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportDutyRoster(c.Request.Context(), orgID, start)
	if err != nil {
		response.InternalError(c)
		return
	}

	writeDownload(c, buf.Bytes(), filename, xlsxContentType)
}

// ExportDutyCalendar downloads the resolved roster as an ICS feed.
// GET /api/v1/export/duty-calendar?start=2026-03-02&days=7
func (h *ExportHandler) ExportDutyCalendar(c *gin.Context) {
	orgID, ok := MustGetOrgID(c)
	if !ok {
		return
	}

	start, ok := h.parseStart(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	buf, filename, err := h.exportSvc.ExportDutyCalendar(c.Request.Context(), orgID, start, days)
	if err != nil {
		response.InternalError(c)
		return
	}

	writeDownload(c, buf.Bytes(), filename, icsContentType)
}

func (h *ExportHandler) parseStart(c *gin.Context) (time.Time, bool) {
	q := c.Query("start")
	if q == "" {
		return time.Now().UTC(), true
	}
	start, err := time.Parse("2006-01-02", q)
	if err != nil {
		response.BadRequest(c, 10001, "start must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return start, true
}

func writeDownload(c *gin.Context, data []byte, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/service"
	"venuecrew/backend/pkg/response"
)

// ExportHandler serves roster downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Roster streams the roster for a date range as an .xlsx workbook.
// GET /api/v1/export/roster?venueId&startDate&endDate
func (h *ExportHandler) Roster(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		response.BadRequest(c, 19001, "startDate is required, formatted YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		response.BadRequest(c, 19001, "endDate is required, formatted YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		response.BadRequest(c, 19002, "endDate must not precede startDate")
		return
	}

	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context(), c.Query("venueId"), start, end)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoShifts):
			response.NotFound(c, 19101, "no shifts in the selected range")
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

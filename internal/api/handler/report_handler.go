package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// ReportHandler report and export endpoints
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Bookings booking report as JSON, CSV or XLSX
// GET /api/v1/reports/bookings?format=json|csv|xlsx
func (h *ReportHandler) Bookings(c *gin.Context) {
	var req dto.BookingReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	if req.Format == "" || req.Format == dto.ReportFormatJSON {
		rows, err := h.reportSvc.Bookings(c.Request.Context(), caller, &req.BookingListRequest)
		if err != nil {
			handleError(c, err)
			return
		}
		response.OK(c, gin.H{"list": rows})
		return
	}

	file, err := h.reportSvc.ExportBookings(c.Request.Context(), caller, &req.BookingListRequest, req.Format)
	if err != nil {
		handleError(c, err)
		return
	}
	sendFile(c, file)
}

// Appointments appointment report as JSON, CSV or XLSX
// GET /api/v1/reports/appointments?format=json|csv|xlsx
func (h *ReportHandler) Appointments(c *gin.Context) {
	var req dto.AppointmentReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	if req.Format == "" || req.Format == dto.ReportFormatJSON {
		rows, err := h.reportSvc.Appointments(c.Request.Context(), caller, &req.AppointmentListRequest)
		if err != nil {
			handleError(c, err)
			return
		}
		response.OK(c, gin.H{"list": rows})
		return
	}

	file, err := h.reportSvc.ExportAppointments(c.Request.Context(), caller, &req.AppointmentListRequest, req.Format)
	if err != nil {
		handleError(c, err)
		return
	}
	sendFile(c, file)
}

func sendFile(c *gin.Context, file *service.ReportFile) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

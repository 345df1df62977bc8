package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// AppointmentHandler lawyer appointment endpoints
type AppointmentHandler struct {
	appointmentSvc service.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler
func NewAppointmentHandler(appointmentSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentSvc: appointmentSvc}
}

// CreateAppointment the calling client requests a lawyer slot
// POST /api/v1/appointments
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	clientID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	appt, err := h.appointmentSvc.Create(c.Request.Context(), &req, clientID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, appt)
}

// ApproveAppointment
// POST /api/v1/appointments/:id/approve
func (h *AppointmentHandler) ApproveAppointment(c *gin.Context) {
	appt, err := h.appointmentSvc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, appt)
}

// RemoveAppointment
// DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) RemoveAppointment(c *gin.Context) {
	if err := h.appointmentSvc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListAppointments scoped to the caller's role
// GET /api/v1/appointments
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var req dto.AppointmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	appts, err := h.appointmentSvc.List(c.Request.Context(), caller, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": appts})
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// AvailabilityHandler slot grid endpoints
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// Courtrooms one courtroom when ?courtroom= is given, otherwise every active one
// GET /api/v1/availability?date=YYYY-MM-DD[&courtroom=]
func (h *AvailabilityHandler) Courtrooms(c *gin.Context) {
	var req dto.CourtroomAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	if req.Courtroom != "" {
		grid, err := h.availabilitySvc.Courtroom(c.Request.Context(), req.Courtroom, req.Date)
		if err != nil {
			handleError(c, err)
			return
		}
		response.OK(c, grid)
		return
	}

	grids, err := h.availabilitySvc.Courtrooms(c.Request.Context(), req.Date)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": grids})
}

// Lawyer
// GET /api/v1/lawyers/:id/availability?date=YYYY-MM-DD
func (h *AvailabilityHandler) Lawyer(c *gin.Context) {
	var req dto.LawyerAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	grid, err := h.availabilitySvc.Lawyer(c.Request.Context(), c.Param("id"), req.Date)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, grid)
}

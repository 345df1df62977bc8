package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// BookingHandler courtroom booking endpoints
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler creates a BookingHandler
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// CreateBooking the calling lawyer requests a courtroom slot
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	lawyerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req, lawyerID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, booking)
}

// ApproveBooking
// POST /api/v1/bookings/:id/approve
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	booking, err := h.bookingSvc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, booking)
}

// RemoveBooking
// DELETE /api/v1/bookings/:id
func (h *BookingHandler) RemoveBooking(c *gin.Context) {
	if err := h.bookingSvc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListBookings scoped to the caller's role
// GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var req dto.BookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	bookings, err := h.bookingSvc.List(c.Request.Context(), caller, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": bookings})
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// badRequest binding failure
func badRequest(c *gin.Context, err error) {
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "validation failed", err.Error())
}

// handleReservationError maps the sentinel errors shared by every
// reservation-shaped module; returns false when err is not one of them
func handleReservationError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		detail := strings.TrimPrefix(err.Error(), service.ErrInvalidRequest.Error()+": ")
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, service.ErrInvalidRequest.Error(), detail)
	case errors.Is(err, service.ErrSlotConflict):
		response.Conflict(c, 14001, err.Error())
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 14002, err.Error())
	case errors.Is(err, service.ErrAppointmentNotFound):
		response.NotFound(c, 15002, err.Error())
	case errors.Is(err, service.ErrCourtroomNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrCourtroomExists):
		response.Conflict(c, 13002, err.Error())
	case errors.Is(err, service.ErrCaseNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, service.ErrCaseNumberTaken):
		response.Conflict(c, 16002, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, err.Error())
	default:
		return false
	}
	return true
}

func handleError(c *gin.Context, err error) {
	if !handleReservationError(c, err) {
		response.InternalError(c)
	}
}

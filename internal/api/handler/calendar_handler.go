package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
)

const contentTypeICS = "text/calendar; charset=utf-8"

// CalendarHandler iCalendar feed
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler creates a CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// Feed the caller's reservations
// GET /api/v1/calendar.ics
func (h *CalendarHandler) Feed(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	feed, err := h.calendarSvc.Feed(c.Request.Context(), caller)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="reservations.ics"`)
	c.Data(http.StatusOK, contentTypeICS, feed)
}

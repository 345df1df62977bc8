package dto

import "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"

// CourtroomAvailabilityRequest an empty courtroom means every active courtroom
type CourtroomAvailabilityRequest struct {
	Courtroom string `form:"courtroom"`
	Date      string `form:"date"`
}

// LawyerAvailabilityRequest lawyer availability query
type LawyerAvailabilityRequest struct {
	Date string `form:"date"`
}

// ResourceAvailability slot grid of one resource on one date
type ResourceAvailability struct {
	Resource string         `json:"resource"`
	Date     string         `json:"date"`
	Slots    []slots.Status `json:"slots"`
}

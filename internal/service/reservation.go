package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
)

// ── errors shared by booking and appointment commands ──

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrSlotConflict        = errors.New("slot already booked")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// requireFields takes name/value pairs and reports the first empty value
func requireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) > 0 {
		return invalidf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// validateSlot date must be canonical YYYY-MM-DD and label a catalog slot
func validateSlot(catalog *slots.Catalog, date, label string) error {
	if _, err := slots.ParseDate(date); err != nil {
		return invalidf("date must be a valid YYYY-MM-DD date")
	}
	if !catalog.Contains(label) {
		return invalidf("time %q is not a bookable slot", label)
	}
	return nil
}

// validateRange optional inclusive date bounds
func validateRange(from, to string) error {
	if from != "" {
		if _, err := slots.ParseDate(from); err != nil {
			return invalidf("from must be a valid YYYY-MM-DD date")
		}
	}
	if to != "" {
		if _, err := slots.ParseDate(to); err != nil {
			return invalidf("to must be a valid YYYY-MM-DD date")
		}
	}
	if from != "" && to != "" && from > to {
		return invalidf("from must not be after to")
	}
	return nil
}

// isUUID ids that cannot be UUIDs can never match a row
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

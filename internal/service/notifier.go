package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/notify"
)

// reservationNotifier turns reservation events into messages.
// Lookup failures are logged and the affected recipient is skipped.
type reservationNotifier struct {
	users      UserService
	dispatcher notify.Dispatcher
	logger     *zap.Logger
}

func newReservationNotifier(users UserService, dispatcher notify.Dispatcher, logger *zap.Logger) *reservationNotifier {
	return &reservationNotifier{users: users, dispatcher: dispatcher, logger: logger}
}

func (n *reservationNotifier) bookingRequested(ctx context.Context, b *model.Booking) {
	if n == nil || n.dispatcher == nil {
		return
	}
	admins, err := n.users.ContactsByRole(ctx, model.RoleAdmin)
	if err != nil {
		n.logger.Warn("lookup admin contacts failed", zap.Error(err))
		return
	}
	body := fmt.Sprintf("Booking requested: %s %s %s", b.Date, b.Time, b.Courtroom)
	msgs := make([]notify.Message, 0, len(admins))
	for _, a := range admins {
		if a.Email != "" {
			msgs = append(msgs, notify.Email(a.Email, "New Booking Pending", body))
		}
	}
	n.dispatcher.Dispatch(ctx, msgs...)
}

func (n *reservationNotifier) bookingConfirmed(ctx context.Context, b *model.Booking) {
	if n == nil || n.dispatcher == nil {
		return
	}
	body := fmt.Sprintf("Reminder: Your hearing is scheduled on %s, %s, %s.", b.Date, b.Time, b.Courtroom)
	n.dispatcher.Dispatch(ctx, n.both(ctx, "Booking Confirmed", body, b.LawyerID, b.ClientID)...)
}

func (n *reservationNotifier) appointmentRequested(ctx context.Context, a *model.Appointment) {
	if n == nil || n.dispatcher == nil {
		return
	}
	lawyer, ok := n.contact(ctx, a.LawyerID)
	if !ok || lawyer.Email == "" {
		return
	}
	body := fmt.Sprintf("Requested %s %s - %s", a.Date, a.Time, a.Description)
	n.dispatcher.Dispatch(ctx, notify.Email(lawyer.Email, "New Appointment Request", body))
}

func (n *reservationNotifier) appointmentConfirmed(ctx context.Context, a *model.Appointment) {
	if n == nil || n.dispatcher == nil {
		return
	}
	body := fmt.Sprintf("Reminder: Your appointment is scheduled on %s, %s.", a.Date, a.Time)
	n.dispatcher.Dispatch(ctx, n.both(ctx, "Appointment Confirmed", body, a.LawyerID, a.ClientID)...)
}

// both emails then texts each party that has the matching contact
func (n *reservationNotifier) both(ctx context.Context, subject, body string, userIDs ...string) []notify.Message {
	var contacts []model.Contact
	for _, id := range userIDs {
		if c, ok := n.contact(ctx, id); ok {
			contacts = append(contacts, c)
		}
	}
	var msgs []notify.Message
	for _, c := range contacts {
		if c.Email != "" {
			msgs = append(msgs, notify.Email(c.Email, subject, body))
		}
	}
	for _, c := range contacts {
		if c.Phone != "" {
			msgs = append(msgs, notify.SMS(c.Phone, body))
		}
	}
	return msgs
}

func (n *reservationNotifier) contact(ctx context.Context, userID string) (model.Contact, bool) {
	c, err := n.users.LookupContact(ctx, userID)
	if err != nil {
		n.logger.Warn("lookup contact failed", zap.String("user_id", userID), zap.Error(err))
		return model.Contact{}, false
	}
	return *c, true
}

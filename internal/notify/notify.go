// Package notify delivers best-effort email and SMS messages.
// Delivery never fails the operation that triggered it.
package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
)

// Channel delivery channel
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// ErrChannelDisabled the channel has no configured sender
var ErrChannelDisabled = errors.New("notification channel not configured")

// Message one outbound notification
type Message struct {
	Channel Channel `json:"channel"`
	To      string  `json:"to"`
	Subject string  `json:"subject,omitempty"`
	Body    string  `json:"body"`
}

// Email builds an email message
func Email(to, subject, body string) Message {
	return Message{Channel: ChannelEmail, To: to, Subject: subject, Body: body}
}

// SMS builds a text message
func SMS(to, body string) Message {
	return Message{Channel: ChannelSMS, To: to, Body: body}
}

// Dispatcher hands messages off for delivery; it never reports delivery errors to the caller
type Dispatcher interface {
	Dispatch(ctx context.Context, msgs ...Message)
	Close() error
}

// EmailSender sends one email
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender sends one text message
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// Senders channel senders; a nil sender disables its channel
type Senders struct {
	Email EmailSender
	SMS   SMSSender
}

// NewSenders builds the senders the configuration enables
func NewSenders(mail *config.MailConfig, sms *config.SMSConfig) Senders {
	var s Senders
	if mail.SMTPHost != "" {
		s.Email = NewSMTPSender(mail)
	}
	if sms.AccountSID != "" && sms.AuthToken != "" && sms.From != "" {
		s.SMS = NewTwilioSender(sms)
	}
	return s
}

// Deliver sends msg on its channel
func (s Senders) Deliver(ctx context.Context, msg Message) error {
	switch msg.Channel {
	case ChannelEmail:
		if s.Email == nil {
			return ErrChannelDisabled
		}
		return s.Email.Send(ctx, msg.To, msg.Subject, msg.Body)
	case ChannelSMS:
		if s.SMS == nil {
			return ErrChannelDisabled
		}
		return s.SMS.Send(ctx, msg.To, msg.Body)
	default:
		return fmt.Errorf("unknown channel %q", msg.Channel)
	}
}

// NewDispatcher picks the dispatcher for notify.mode
func NewDispatcher(cfg *config.Config, senders Senders, logger *zap.Logger) Dispatcher {
	if cfg.Notify.Mode == "queue" {
		return NewQueueDispatcher(&cfg.Redis, &cfg.Notify, logger)
	}
	return NewDirectDispatcher(senders, cfg.Notify.Timeout, logger)
}

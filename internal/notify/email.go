package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
)

// SMTPSender sends plain-text email through an SMTP relay
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender authenticates only when a username is configured
func NewSMTPSender(cfg *config.MailConfig) *SMTPSender {
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = "noreply@example.com"
	}
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: auth,
		from: from,
	}
}

// Send net/smtp has no context support, so ctx is only checked before dialing
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}

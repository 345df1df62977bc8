package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
)

// TwilioSender posts to a Twilio-compatible Messages endpoint
type TwilioSender struct {
	endpoint string
	sid      string
	token    string
	from     string
	http     *http.Client
}

// NewTwilioSender creates a TwilioSender
func NewTwilioSender(cfg *config.SMSConfig) *TwilioSender {
	base := strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	return &TwilioSender{
		endpoint: fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", base, url.PathEscape(cfg.AccountSID)),
		sid:      cfg.AccountSID,
		token:    cfg.AuthToken,
		from:     cfg.From,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.sid, s.token)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}

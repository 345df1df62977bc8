package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
)

// ── fake senders ──

type recordingSender struct {
	mu    sync.Mutex
	sent  []Message
	err   error
	delay time.Duration
}

func (r *recordingSender) record(msg Message) error {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recordingSender) messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.sent...)
}

type fakeEmail struct{ *recordingSender }

func (f fakeEmail) Send(_ context.Context, to, subject, body string) error {
	return f.record(Email(to, subject, body))
}

type fakeSMS struct{ *recordingSender }

func (f fakeSMS) Send(_ context.Context, to, body string) error {
	return f.record(SMS(to, body))
}

// ── Senders ──

func TestSenders_DisabledChannel(t *testing.T) {
	var s Senders
	if err := s.Deliver(context.Background(), Email("a@b.c", "s", "b")); !errors.Is(err, ErrChannelDisabled) {
		t.Errorf("expected ErrChannelDisabled for email, got %v", err)
	}
	if err := s.Deliver(context.Background(), SMS("+100", "b")); !errors.Is(err, ErrChannelDisabled) {
		t.Errorf("expected ErrChannelDisabled for sms, got %v", err)
	}
}

func TestNewSenders_OnlyConfiguredChannels(t *testing.T) {
	s := NewSenders(&config.MailConfig{SMTPHost: "smtp.local", SMTPPort: 25}, &config.SMSConfig{AccountSID: "AC1"})
	if s.Email == nil {
		t.Error("expected email sender when smtp host is set")
	}
	if s.SMS != nil {
		t.Error("expected sms disabled without token and from number")
	}
}

// ── DirectDispatcher ──

func TestDirectDispatcher_DeliversAndCloseWaits(t *testing.T) {
	rec := &recordingSender{delay: 20 * time.Millisecond}
	d := NewDirectDispatcher(Senders{Email: fakeEmail{rec}, SMS: fakeSMS{rec}}, time.Second, zap.NewNop())

	d.Dispatch(context.Background(),
		Email("lawyer@example.com", "Booking Confirmed", "hello"),
		SMS("+15550001", "hello"),
		Email("", "skipped", "no address"),
	)
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	sent := rec.messages()
	if len(sent) != 2 {
		t.Fatalf("expected 2 delivered messages, got %d", len(sent))
	}
}

func TestDirectDispatcher_CancelledRequestStillDelivers(t *testing.T) {
	rec := &recordingSender{}
	d := NewDirectDispatcher(Senders{Email: fakeEmail{rec}}, time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Dispatch(ctx, Email("client@example.com", "s", "b"))
	_ = d.Close()

	if len(rec.messages()) != 1 {
		t.Error("expected delivery to be detached from the caller's cancellation")
	}
}

func TestDirectDispatcher_FailureIsSwallowed(t *testing.T) {
	rec := &recordingSender{err: errors.New("smtp down")}
	d := NewDirectDispatcher(Senders{Email: fakeEmail{rec}}, time.Second, zap.NewNop())

	d.Dispatch(context.Background(), Email("x@example.com", "s", "b"))
	if err := d.Close(); err != nil {
		t.Fatalf("Close should not surface delivery errors: %v", err)
	}
}

// ── worker ──

func TestServeMux_DeliversTask(t *testing.T) {
	rec := &recordingSender{}
	mux := NewServeMux(Senders{SMS: fakeSMS{rec}}, zap.NewNop())

	task, err := NewTask(SMS("+15550002", "Reminder"))
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	if task.Type() != TypeSMS {
		t.Errorf("expected task type %s, got %s", TypeSMS, task.Type())
	}
	if err := mux.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask failed: %v", err)
	}
	if got := rec.messages(); len(got) != 1 || got[0].To != "+15550002" {
		t.Errorf("unexpected deliveries: %+v", got)
	}
}

func TestServeMux_BadPayloadSkipsRetry(t *testing.T) {
	mux := NewServeMux(Senders{}, zap.NewNop())
	err := mux.ProcessTask(context.Background(), asynq.NewTask(TypeEmail, []byte("{not json")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("expected SkipRetry, got %v", err)
	}
}

func TestServeMux_DisabledChannelIsNotRetried(t *testing.T) {
	mux := NewServeMux(Senders{}, zap.NewNop())
	task, _ := NewTask(Email("a@example.com", "s", "b"))
	if err := mux.ProcessTask(context.Background(), task); err != nil {
		t.Errorf("expected nil for a disabled channel, got %v", err)
	}
}

// ── TwilioSender ──

func TestTwilioSender_PostsForm(t *testing.T) {
	var gotPath, gotTo, gotBody, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = r.ParseForm()
		gotTo = r.PostForm.Get("To")
		gotBody = r.PostForm.Get("Body")
		gotUser, _, _ = r.BasicAuth()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewTwilioSender(&config.SMSConfig{APIBase: srv.URL, AccountSID: "AC123", AuthToken: "tok", From: "+15550000"})
	if err := s.Send(context.Background(), "+15551234", "Reminder"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotTo != "+15551234" || gotBody != "Reminder" || gotUser != "AC123" {
		t.Errorf("unexpected request: to=%s body=%s user=%s", gotTo, gotBody, gotUser)
	}
}

func TestTwilioSender_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad number", http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewTwilioSender(&config.SMSConfig{APIBase: srv.URL, AccountSID: "AC123", AuthToken: "tok", From: "+1"})
	err := s.Send(context.Background(), "nope", "x")
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Errorf("expected status error, got %v", err)
	}
}

func TestBuildMessage_Headers(t *testing.T) {
	msg := buildMessage("from@example.com", "to@example.com", "Booking Confirmed", "body")
	for _, want := range []string{"From: from@example.com\r\n", "To: to@example.com\r\n", "Subject: Booking Confirmed\r\n", "\r\n\r\nbody\r\n"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

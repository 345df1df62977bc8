package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/jwt"
)

// ── test environment ──

type testEnv struct {
	svc        *Service
	cfg        *config.Config
	catalog    *slots.Catalog
	users      *mockUserRepo
	rooms      *mockCourtroomRepo
	bookings   *mockBookingRepo
	appts      *mockAppointmentRepo
	cases      *mockCaseRepo
	blacklist  *mockBlacklist
	dispatcher *fakeDispatcher

	admin  *model.User
	lawyer *model.User
	client *model.User
}

func newTestEnv(t *testing.T, labels ...string) *testEnv {
	t.Helper()
	if len(labels) == 0 {
		labels = config.DefaultSlotLabels
	}
	catalog, err := slots.New(labels)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-unit-testing",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		},
		Slots: config.SlotsConfig{Labels: labels, SlotMinutes: 60, Timezone: "UTC"},
	}

	clk := &clock{}
	env := &testEnv{
		cfg:        cfg,
		catalog:    catalog,
		users:      newMockUserRepo(clk),
		rooms:      newMockCourtroomRepo(clk),
		bookings:   newMockBookingRepo(clk),
		appts:      newMockAppointmentRepo(clk),
		cases:      newMockCaseRepo(clk),
		blacklist:  newMockBlacklist(),
		dispatcher: &fakeDispatcher{},
	}
	repo := &repository.Repository{
		User:        env.users,
		Courtroom:   env.rooms,
		Booking:     env.bookings,
		Appointment: env.appts,
		Case:        env.cases,
	}

	env.svc, err = NewService(cfg, repo, catalog, jwt.NewManager(&cfg.Auth), env.blacklist, env.dispatcher, zap.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	env.admin = env.seedUser(t, "admin", model.RoleAdmin, "admin@example.com", "")
	env.lawyer = env.seedUser(t, "lawyer", model.RoleLawyer, "lawyer@example.com", "+15550100")
	env.client = env.seedUser(t, "client", model.RoleClient, "client@example.com", "")
	env.seedCourtroom(t, "Court B", true)
	env.seedCourtroom(t, "Court A", true)
	env.seedCourtroom(t, "Court Z", false)
	return env
}

func (e *testEnv) seedUser(t *testing.T, username string, role model.Role, email, phone string) *model.User {
	t.Helper()
	u := &model.User{Name: "User " + username, Username: username, PasswordHash: "x", Role: role}
	if email != "" {
		u.Email = &email
	}
	if phone != "" {
		u.Phone = &phone
	}
	if err := e.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func (e *testEnv) seedCourtroom(t *testing.T, name string, active bool) {
	t.Helper()
	if err := e.rooms.Create(context.Background(), &model.Courtroom{Name: name, IsActive: active}); err != nil {
		t.Fatalf("seed courtroom %s: %v", name, err)
	}
}

func (e *testEnv) bookingReq(courtroom, date, label string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		ClientID:  e.client.UserID,
		Courtroom: courtroom,
		Date:      date,
		Time:      label,
		CaseTitle: "Doe v. Roe",
	}
}

func (e *testEnv) appointmentReq(date, label string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		LawyerID:    e.lawyer.UserID,
		Date:        date,
		Time:        label,
		Description: "Initial consultation",
	}
}

func (e *testEnv) asAdmin() Caller  { return Caller{UserID: e.admin.UserID, Role: model.RoleAdmin} }
func (e *testEnv) asLawyer() Caller { return Caller{UserID: e.lawyer.UserID, Role: model.RoleLawyer} }
func (e *testEnv) asClient() Caller { return Caller{UserID: e.client.UserID, Role: model.RoleClient} }

package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/notify"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// clock monotonically increasing timestamps so created_at ordering is deterministic
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now.IsZero() {
		c.now = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	}
	c.now = c.now.Add(time.Second)
	return c.now
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
	clk   *clock
}

func newMockUserRepo(clk *clock) *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User), clk: clk}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return pkgerrors.ErrDuplicateKey
		}
	}
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.CreatedAt = m.clk.tick()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockUserRepo) List(_ context.Context, role model.Role, offset, limit int) ([]model.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []model.User
	for _, u := range m.users {
		if role == "" || u.Role == role {
			all = append(all, *u)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── Mock CourtroomRepository ──

type mockCourtroomRepo struct {
	mu    sync.Mutex
	rooms map[string]*model.Courtroom
	clk   *clock
}

func newMockCourtroomRepo(clk *clock) *mockCourtroomRepo {
	return &mockCourtroomRepo{rooms: make(map[string]*model.Courtroom), clk: clk}
}

func (m *mockCourtroomRepo) Create(_ context.Context, room *model.Courtroom) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rooms {
		if r.Name == room.Name {
			return pkgerrors.ErrDuplicateKey
		}
	}
	if room.CourtroomID == "" {
		room.CourtroomID = uuid.NewString()
	}
	room.CreatedAt = m.clk.tick()
	cp := *room
	m.rooms[room.CourtroomID] = &cp
	return nil
}

func (m *mockCourtroomRepo) GetByID(_ context.Context, id string) (*model.Courtroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourtroomRepo) GetByName(_ context.Context, name string) (*model.Courtroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rooms {
		if r.Name == name {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourtroomRepo) List(_ context.Context, includeInactive bool) ([]model.Courtroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Courtroom
	for _, r := range m.rooms {
		if includeInactive || r.IsActive {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCourtroomRepo) Update(_ context.Context, room *model.Courtroom) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rooms {
		if id != room.CourtroomID && r.Name == room.Name {
			return pkgerrors.ErrDuplicateKey
		}
	}
	cp := *room
	m.rooms[room.CourtroomID] = &cp
	return nil
}

// ── Mock BookingRepository ──
// Create enforces (courtroom, date, time) uniqueness the way the unique index does.

type mockBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*model.Booking
	clk      *clock
}

func newMockBookingRepo(clk *clock) *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*model.Booking), clk: clk}
}

func (m *mockBookingRepo) FindBySlot(_ context.Context, courtroom, date, t string) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.Courtroom == courtroom && b.Date == date && b.Time == t {
			cp := *b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.Courtroom == booking.Courtroom && b.Date == booking.Date && b.Time == booking.Time {
			return pkgerrors.ErrDuplicateKey
		}
	}
	booking.BookingID = uuid.NewString()
	booking.CreatedAt = m.clk.tick()
	booking.UpdatedAt = booking.CreatedAt
	cp := *booking
	m.bookings[booking.BookingID] = &cp
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id string, status model.ReservationStatus) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	b.Status = status
	b.UpdatedAt = m.clk.tick()
	cp := *b
	return &cp, nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return false, nil
	}
	delete(m.bookings, id)
	return true, nil
}

func (m *mockBookingRepo) List(_ context.Context, f repository.BookingFilter) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Booking
	for _, b := range m.bookings {
		if (f.LawyerID != "" && b.LawyerID != f.LawyerID) ||
			(f.ClientID != "" && b.ClientID != f.ClientID) ||
			(f.Courtroom != "" && b.Courtroom != f.Courtroom) ||
			(f.From != "" && b.Date < f.From) ||
			(f.To != "" && b.Date > f.To) {
			continue
		}
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockBookingRepo) ListByResourceAndDate(ctx context.Context, courtroom, date string) ([]model.Booking, error) {
	return m.List(ctx, repository.BookingFilter{Courtroom: courtroom, From: date, To: date})
}

func (m *mockBookingRepo) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	return m.List(ctx, repository.BookingFilter{From: date, To: date})
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]*model.Appointment
	clk   *clock
}

func newMockAppointmentRepo(clk *clock) *mockAppointmentRepo {
	return &mockAppointmentRepo{appts: make(map[string]*model.Appointment), clk: clk}
}

func (m *mockAppointmentRepo) FindBySlot(_ context.Context, lawyerID, date, t string) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.LawyerID == lawyerID && a.Date == date && a.Time == t {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.LawyerID == appt.LawyerID && a.Date == appt.Date && a.Time == appt.Time {
			return pkgerrors.ErrDuplicateKey
		}
	}
	appt.AppointmentID = uuid.NewString()
	appt.CreatedAt = m.clk.tick()
	appt.UpdatedAt = appt.CreatedAt
	cp := *appt
	m.appts[appt.AppointmentID] = &cp
	return nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.appts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id string, status model.ReservationStatus) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.Status = status
	a.UpdatedAt = m.clk.tick()
	cp := *a
	return &cp, nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.appts[id]; !ok {
		return false, nil
	}
	delete(m.appts, id)
	return true, nil
}

func (m *mockAppointmentRepo) List(_ context.Context, f repository.AppointmentFilter) ([]model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Appointment
	for _, a := range m.appts {
		if (f.LawyerID != "" && a.LawyerID != f.LawyerID) ||
			(f.ClientID != "" && a.ClientID != f.ClientID) ||
			(f.From != "" && a.Date < f.From) ||
			(f.To != "" && a.Date > f.To) {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockAppointmentRepo) ListByResourceAndDate(ctx context.Context, lawyerID, date string) ([]model.Appointment, error) {
	return m.List(ctx, repository.AppointmentFilter{LawyerID: lawyerID, From: date, To: date})
}

// ── Mock CaseRepository ──

type mockCaseRepo struct {
	mu    sync.Mutex
	cases map[string]*model.LegalCase
	clk   *clock
}

func newMockCaseRepo(clk *clock) *mockCaseRepo {
	return &mockCaseRepo{cases: make(map[string]*model.LegalCase), clk: clk}
}

func (m *mockCaseRepo) Create(_ context.Context, c *model.LegalCase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.cases {
		if existing.CaseNumber == c.CaseNumber {
			return pkgerrors.ErrDuplicateKey
		}
	}
	c.CaseID = uuid.NewString()
	c.CreatedAt = m.clk.tick()
	cp := *c
	m.cases[c.CaseID] = &cp
	return nil
}

func (m *mockCaseRepo) GetByID(_ context.Context, id string) (*model.LegalCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.cases[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCaseRepo) List(_ context.Context, lawyerID string, offset, limit int) ([]model.LegalCase, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []model.LegalCase
	for _, c := range m.cases {
		if lawyerID == "" || c.LawyerID == lawyerID {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{revoked: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = ttl
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[jti]
	return ok, nil
}

// ── fake Dispatcher ──

type fakeDispatcher struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (d *fakeDispatcher) Dispatch(_ context.Context, msgs ...notify.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, msgs...)
}

func (d *fakeDispatcher) Close() error { return nil }

func (d *fakeDispatcher) messages() []notify.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notify.Message(nil), d.sent...)
}

func (d *fakeDispatcher) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = nil
}

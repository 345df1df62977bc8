//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/database"
	pkgerrors "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=court_booking_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect test database: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "get sql.DB: %v\n", err)
		os.Exit(1)
	}
	// the real migrations carry the unique slot indexes
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData creates a lawyer, a client and a courtroom and returns a cleanup func
func setupTestData(t *testing.T) (lawyer, client *model.User, room *model.Courtroom, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	lawyer = &model.User{
		Name:         "Test Lawyer",
		Username:     fmt.Sprintf("lawyer%d", suffix),
		PasswordHash: "$2a$10$placeholder",
		Role:         model.RoleLawyer,
	}
	if err := testDB.WithContext(ctx).Create(lawyer).Error; err != nil {
		t.Fatalf("create lawyer: %v", err)
	}

	client = &model.User{
		Name:         "Test Client",
		Username:     fmt.Sprintf("client%d", suffix),
		PasswordHash: "$2a$10$placeholder",
		Role:         model.RoleClient,
	}
	if err := testDB.WithContext(ctx).Create(client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}

	room = &model.Courtroom{Name: fmt.Sprintf("Court %d", suffix), IsActive: true}
	if err := testDB.WithContext(ctx).Create(room).Error; err != nil {
		t.Fatalf("create courtroom: %v", err)
	}

	cleanup = func() {
		testDB.Where("courtroom = ?", room.Name).Delete(&model.Booking{})
		testDB.Where("lawyer_id = ?", lawyer.UserID).Delete(&model.Appointment{})
		testDB.Where("lawyer_id = ?", lawyer.UserID).Delete(&model.LegalCase{})
		testDB.Where("courtroom_id = ?", room.CourtroomID).Delete(&model.Courtroom{})
		testDB.Where("user_id IN ?", []string{lawyer.UserID, client.UserID}).Delete(&model.User{})
	}
	return
}

// ═══════════════════════════════════════════════════════════
// Test: unique slot index
// ═══════════════════════════════════════════════════════════

func TestBooking_DuplicateSlotRejected(t *testing.T) {
	lawyer, client, room, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	first := &model.Booking{
		LawyerID: lawyer.UserID, ClientID: client.UserID,
		Courtroom: room.Name, Date: "2025-01-10", Time: "9:00 AM",
		CaseTitle: "A v B", Status: model.StatusPending,
	}
	if err := repo.Booking.Create(ctx, first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := *first
	second.BookingID = ""
	second.CaseTitle = "C v D"
	err := repo.Booking.Create(ctx, &second)
	if !errors.Is(err, pkgerrors.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestBooking_ConcurrentCreateSingleWinner(t *testing.T) {
	lawyer, client, room, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	const callers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Booking.Create(ctx, &model.Booking{
				LawyerID: lawyer.UserID, ClientID: client.UserID,
				Courtroom: room.Name, Date: "2025-01-11", Time: "10:00 AM",
				CaseTitle: fmt.Sprintf("case %d", i), Status: model.StatusPending,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, pkgerrors.ErrDuplicateKey):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successes != 1 || conflicts != callers-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d and %d", callers-1, successes, conflicts)
	}
}

func TestBooking_StatusAndDelete(t *testing.T) {
	lawyer, client, room, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	b := &model.Booking{
		LawyerID: lawyer.UserID, ClientID: client.UserID,
		Courtroom: room.Name, Date: "2025-01-12", Time: "11:00 AM",
		CaseTitle: "State v X", Status: model.StatusPending,
	}
	if err := repo.Booking.Create(ctx, b); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.Booking.UpdateStatus(ctx, b.BookingID, model.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != model.StatusConfirmed || updated.Courtroom != room.Name {
		t.Errorf("unexpected row after update: %+v", updated)
	}

	deleted, err := repo.Booking.Delete(ctx, b.BookingID)
	if err != nil || !deleted {
		t.Fatalf("Delete = %v, %v", deleted, err)
	}
	deleted, err = repo.Booking.Delete(ctx, b.BookingID)
	if err != nil || deleted {
		t.Fatalf("second Delete = %v, %v; expected false, nil", deleted, err)
	}

	// the freed slot accepts a new booking
	again := *b
	again.BookingID = ""
	if err := repo.Booking.Create(ctx, &again); err != nil {
		t.Fatalf("rebooking freed slot failed: %v", err)
	}
}

func TestAppointment_UniquePerLawyer(t *testing.T) {
	lawyer, client, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	a := &model.Appointment{
		LawyerID: lawyer.UserID, ClientID: client.UserID,
		Date: "2025-01-10", Time: "9:00 AM",
		Description: "consultation", Status: model.StatusPending,
	}
	if err := repo.Appointment.Create(ctx, a); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	dup := *a
	dup.AppointmentID = ""
	if err := repo.Appointment.Create(ctx, &dup); !errors.Is(err, pkgerrors.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	found, err := repo.Appointment.FindBySlot(ctx, lawyer.UserID, "2025-01-10", "9:00 AM")
	if err != nil {
		t.Fatalf("FindBySlot failed: %v", err)
	}
	if found.AppointmentID != a.AppointmentID {
		t.Errorf("FindBySlot returned %s, want %s", found.AppointmentID, a.AppointmentID)
	}
}

func TestCase_ClientIDsRoundTrip(t *testing.T) {
	lawyer, client, room, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	c := &model.LegalCase{
		CaseNumber: fmt.Sprintf("CASE-%d", time.Now().UnixNano()),
		Title:      "Estate of Y",
		Court:      room.Name,
		Date:       "2025-02-01",
		LawyerID:   lawyer.UserID,
		ClientIDs:  []string{client.UserID},
	}
	if err := repo.Case.Create(ctx, c); err != nil {
		t.Fatalf("create case failed: %v", err)
	}

	got, err := repo.Case.GetByID(ctx, c.CaseID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.ClientIDs) != 1 || got.ClientIDs[0] != client.UserID {
		t.Errorf("client_ids = %v", got.ClientIDs)
	}
}

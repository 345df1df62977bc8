package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
)

func TestCourtroomService_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	room, err := env.svc.Courtroom.Create(ctx, &dto.CreateCourtroomRequest{Name: "  Court C "}, env.admin.UserID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if room.Name != "Court C" || !room.IsActive {
		t.Errorf("unexpected courtroom %+v", room)
	}

	if _, err := env.svc.Courtroom.Create(ctx, &dto.CreateCourtroomRequest{Name: "Court A"}, env.admin.UserID); !errors.Is(err, ErrCourtroomExists) {
		t.Errorf("expected ErrCourtroomExists, got %v", err)
	}

	active, err := env.svc.Courtroom.List(ctx, false)
	if err != nil || len(active) != 3 || active[0].Name != "Court A" {
		t.Fatalf("List(active) = %+v, %v", active, err)
	}
	all, _ := env.svc.Courtroom.List(ctx, true)
	if len(all) != 4 {
		t.Errorf("expected 4 courtrooms including inactive, got %d", len(all))
	}
}

func TestCourtroomService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rooms, _ := env.svc.Courtroom.List(ctx, false)
	id := rooms[0].ID
	inactive := false
	updated, err := env.svc.Courtroom.Update(ctx, id, &dto.UpdateCourtroomRequest{IsActive: &inactive})
	if err != nil || updated.IsActive {
		t.Fatalf("deactivate = %+v, %v", updated, err)
	}

	// deactivated courtrooms stop accepting bookings
	if _, err := env.svc.Booking.Create(ctx, env.bookingReq(updated.Name, "2025-01-10", "9:00 AM"), env.lawyer.UserID); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for an inactive courtroom, got %v", err)
	}

	taken := "Court B"
	if _, err := env.svc.Courtroom.Update(ctx, id, &dto.UpdateCourtroomRequest{Name: &taken}); !errors.Is(err, ErrCourtroomExists) {
		t.Errorf("expected ErrCourtroomExists on rename clash, got %v", err)
	}
	if _, err := env.svc.Courtroom.Update(ctx, uuid.NewString(), &dto.UpdateCourtroomRequest{}); !errors.Is(err, ErrCourtroomNotFound) {
		t.Errorf("expected ErrCourtroomNotFound, got %v", err)
	}
}

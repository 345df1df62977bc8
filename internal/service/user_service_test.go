package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
)

func TestUserService_LookupContact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.svc.User.LookupContact(ctx, env.lawyer.UserID)
	if err != nil {
		t.Fatalf("LookupContact failed: %v", err)
	}
	if c.Email != "lawyer@example.com" || c.Phone != "+15550100" {
		t.Errorf("unexpected contact %+v", c)
	}

	c, err = env.svc.User.LookupContact(ctx, env.client.UserID)
	if err != nil || c.Phone != "" {
		t.Errorf("client without phone: %+v, %v", c, err)
	}

	if _, err := env.svc.User.LookupContact(ctx, uuid.NewString()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListAndByRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	page, err := env.svc.User.List(ctx, &dto.UserListRequest{})
	if err != nil || page.Total != 3 || page.Page != 1 || page.PageSize != 20 {
		t.Fatalf("List = %+v, %v", page, err)
	}

	lawyers, err := env.svc.User.ListByRole(ctx, model.RoleLawyer)
	if err != nil || len(lawyers) != 1 || lawyers[0].ID != env.lawyer.UserID {
		t.Fatalf("ListByRole(lawyer) = %+v, %v", lawyers, err)
	}
}

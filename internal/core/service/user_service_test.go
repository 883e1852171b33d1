package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

func TestUserService_Get_IncludesRoles(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, store)

	created, err := svc.Create(context.Background(), ports.SignupInput{
		Email:    "mod@example.com",
		Password: "pass",
		Roles:    []string{"moderator"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got.Roles) != 1 || got.Roles[0] != domain.RoleModerator {
		t.Fatalf("expected moderator role, got %v", got.Roles)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, store)

	created, _ := svc.Create(context.Background(), ports.SignupInput{Email: "u@example.com", Password: "old"})

	password := "newpass"
	position := "Engineer"
	if err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Password: &password,
		Position: &position,
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := store.FindByID(context.Background(), created.ID)
	if got.Position != "Engineer" {
		t.Fatalf("position not updated: %q", got.Position)
	}
	if got.PasswordHash == "newpass" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, store)

	position := "Ghost"
	if err := svc.Update(context.Background(), 404, ports.UpdateUserInput{Position: &position}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, store)

	created, _ := svc.Create(context.Background(), ports.SignupInput{Email: "gone@example.com", Password: "x"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestUserService_Bookings_UnknownUser(t *testing.T) {
	store := newStubUserStore()
	svc := NewUserService(store, store)

	if _, err := svc.Bookings(context.Background(), 99); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

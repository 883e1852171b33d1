package service

import (
	"context"
	"testing"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

func validRoomInput() ports.CreateRoomInput {
	return ports.CreateRoomInput{
		Name:                "Boardroom",
		Image:               "https://example.com/boardroom.png",
		Floor:               "3",
		PointOfContactEmail: "facilities@example.com",
		PointOfContactPhone: "+1-555-0100",
	}
}

func TestRoomService_Create_RequiresAllFields(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo())

	in := validRoomInput()
	in.Floor = ""
	if _, err := svc.Create(context.Background(), in); err != domain.ErrRoomDataRequired {
		t.Fatalf("expected ErrRoomDataRequired, got %v", err)
	}
}

func TestRoomService_CreateAndGet(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo())

	room, err := svc.Create(context.Background(), validRoomInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if room.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.Get(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Boardroom" || got.Floor != "3" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestRoomService_Update_Partial(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo)

	room, _ := svc.Create(context.Background(), validRoomInput())

	name := "War Room"
	if err := svc.Update(context.Background(), room.ID, ports.UpdateRoomInput{Name: &name}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := svc.Get(context.Background(), room.ID)
	if got.Name != "War Room" {
		t.Fatalf("name not updated: %q", got.Name)
	}
	if got.Floor != "3" || got.PointOfContactEmail != "facilities@example.com" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestRoomService_Update_UnknownRoom(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo())

	name := "Ghost"
	if err := svc.Update(context.Background(), 42, ports.UpdateRoomInput{Name: &name}); err != domain.ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomService_Delete_RejectedWhileBooked(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo)

	room, _ := svc.Create(context.Background(), validRoomInput())
	repo.bookingCount[room.ID] = 2

	if err := svc.Delete(context.Background(), room.ID); err != domain.ErrRoomHasBookings {
		t.Fatalf("expected ErrRoomHasBookings, got %v", err)
	}
	if _, err := svc.Get(context.Background(), room.ID); err != nil {
		t.Fatalf("room must survive the rejected delete: %v", err)
	}

	repo.bookingCount[room.ID] = 0
	if err := svc.Delete(context.Background(), room.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), room.ID); err != domain.ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound after delete, got %v", err)
	}
}

func TestRoomService_Bookings_UnknownRoom(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo())

	if _, err := svc.Bookings(context.Background(), 7); err != domain.ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

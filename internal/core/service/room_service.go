package service

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// RoomService implements room CRUD and the per-room bookings listing.
type RoomService struct {
	rooms ports.RoomRepository
}

func NewRoomService(rooms ports.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

func (s *RoomService) Create(ctx context.Context, in ports.CreateRoomInput) (*domain.Room, error) {
	// The request schema enforces this too; kept here so the rule survives
	// any other entry point.
	if in.Name == "" || in.Image == "" || in.Floor == "" || in.PointOfContactEmail == "" || in.PointOfContactPhone == "" {
		return nil, domain.ErrRoomDataRequired
	}

	room := &domain.Room{
		Name:                in.Name,
		Image:               in.Image,
		Floor:               in.Floor,
		PointOfContactEmail: in.PointOfContactEmail,
		PointOfContactPhone: in.PointOfContactPhone,
	}
	return s.rooms.Create(ctx, room)
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.FindAll(ctx)
}

func (s *RoomService) Get(ctx context.Context, id uint) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *RoomService) Update(ctx context.Context, id uint, in ports.UpdateRoomInput) error {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Floor != nil {
		fields["floor"] = *in.Floor
	}
	if in.PointOfContactEmail != nil {
		fields["point_of_contact_email"] = *in.PointOfContactEmail
	}
	if in.PointOfContactPhone != nil {
		fields["point_of_contact_phone"] = *in.PointOfContactPhone
	}

	return s.rooms.Update(ctx, id, fields)
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	return s.rooms.Delete(ctx, id)
}

func (s *RoomService) Bookings(ctx context.Context, roomID uint) ([]domain.Booking, error) {
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.rooms.BookingsFor(ctx, roomID)
}

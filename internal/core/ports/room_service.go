package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// CreateRoomInput carries the fields accepted on room creation. All five are
// required.
type CreateRoomInput struct {
	Name                string
	Image               string
	Floor               string
	PointOfContactEmail string
	PointOfContactPhone string
}

// UpdateRoomInput is a partial patch: nil pointers leave the field untouched.
type UpdateRoomInput struct {
	Name                *string
	Image               *string
	Floor               *string
	PointOfContactEmail *string
	PointOfContactPhone *string
}

type RoomService interface {
	Create(ctx context.Context, in CreateRoomInput) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	Get(ctx context.Context, id uint) (*domain.Room, error)
	Update(ctx context.Context, id uint, in UpdateRoomInput) error
	Delete(ctx context.Context, id uint) error
	Bookings(ctx context.Context, roomID uint) ([]domain.Booking, error)
}

package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// RoomRepository defines persistence for bookable rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id uint) (*domain.Room, error)
	FindAll(ctx context.Context) ([]domain.Room, error)
	// Update applies a partial field patch. Returns domain.ErrRoomNotFound
	// unless exactly one row was affected.
	Update(ctx context.Context, id uint, fields map[string]any) error
	// Delete removes the room. Returns domain.ErrRoomHasBookings while
	// bookings still reference it (no cascade).
	Delete(ctx context.Context, id uint) error
	// BookingsFor lists the room's bookings with attendees populated.
	BookingsFor(ctx context.Context, roomID uint) ([]domain.Booking, error)
}

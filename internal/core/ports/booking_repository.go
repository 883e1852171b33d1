package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// BookingRepository defines persistence for bookings and attendee links.
type BookingRepository interface {
	// Create persists the booking and links the given attendee ids. Attendee
	// ids are not existence-checked on this path.
	Create(ctx context.Context, booking *domain.Booking, attendeeIDs []uint) (*domain.Booking, error)
	// Update applies a partial field patch and, when replaceAttendees is set,
	// swaps the full attendee set in the same transaction. Returns
	// domain.ErrBookingNotFound when no row was affected.
	Update(ctx context.Context, id uint, fields map[string]any, attendeeIDs []uint, replaceAttendees bool) error
	Delete(ctx context.Context, id uint) error
	// FindAll loads every booking with its room and attendees.
	FindAll(ctx context.Context) ([]domain.Booking, error)
	// FindByID loads one booking with its attendees.
	FindByID(ctx context.Context, id uint) (*domain.Booking, error)
	// Approve flips isApproved to true. The transition is one-way; nothing
	// exposes the reverse.
	Approve(ctx context.Context, id uint) error
	Attendees(ctx context.Context, bookingID uint) ([]domain.User, error)
	// AddAttendees links users additively; existing links are kept.
	AddAttendees(ctx context.Context, bookingID uint, userIDs []uint) error
	RemoveAttendee(ctx context.Context, bookingID uint, userID uint) error
	IsAttendee(ctx context.Context, bookingID uint, userID uint) (bool, error)
}

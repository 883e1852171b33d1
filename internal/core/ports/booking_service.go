package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// CreateBookingInput carries the fields accepted on booking creation.
type CreateBookingInput struct {
	StartDate  string
	EndDate    string
	Purpose    string
	RoomID     uint
	IsApproved bool
	UserIDs    []uint
}

// UpdateBookingInput is a partial patch: nil pointers leave the field
// untouched. A non-nil UserIDs replaces the full attendee set.
type UpdateBookingInput struct {
	StartDate  *string
	EndDate    *string
	Purpose    *string
	IsApproved *bool
	RoomID     *uint
	UserIDs    []uint
}

type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id uint, in UpdateBookingInput) error
	Delete(ctx context.Context, id uint) error
	// Approve flips the booking to approved. callerID's current roles are
	// checked in-service on top of the route gate.
	Approve(ctx context.Context, id uint, callerID uint) error
	List(ctx context.Context) ([]domain.Booking, error)
	Get(ctx context.Context, id uint) (*domain.Booking, error)
	Attendees(ctx context.Context, id uint) ([]domain.User, error)
	// AddAttendees is all-or-nothing: if any id does not resolve to a user,
	// nothing is linked.
	AddAttendees(ctx context.Context, id uint, userIDs []uint) error
	RemoveAttendee(ctx context.Context, id uint, userID uint) error
}

package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// UpdateUserInput is a partial patch: nil pointers leave the field untouched.
// A non-nil Password is rehashed before persisting.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Position  *string
	Picture   *string
	Password  *string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	// Get returns the user with current role names flattened onto the profile.
	Get(ctx context.Context, id uint) (*domain.User, error)
	// Create is the admin-create path; it shares signup semantics including
	// the default USER role.
	Create(ctx context.Context, in SignupInput) (*domain.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) error
	Delete(ctx context.Context, id uint) error
	Bookings(ctx context.Context, id uint) ([]domain.Booking, error)
	// SessionInfo resolves the calling user's own profile with role names.
	SessionInfo(ctx context.Context, userID uint) (*domain.User, error)
	// SessionBookings lists the calling user's bookings with room and
	// attendee relations.
	SessionBookings(ctx context.Context, userID uint) ([]domain.Booking, error)
}

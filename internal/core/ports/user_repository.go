package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// UserRepository defines persistence for users and their role memberships.
type UserRepository interface {
	// Create persists a new user and assigns the given roles. Role names are
	// resolved against the seeded role table.
	Create(ctx context.Context, user *domain.User, roles []domain.Role) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindByIDs returns only the users that exist; callers compare lengths to
	// detect missing ids.
	FindByIDs(ctx context.Context, ids []uint) ([]domain.User, error)
	// Update applies a partial field patch. Returns domain.ErrUserNotFound
	// when the user does not exist.
	Update(ctx context.Context, id uint, fields map[string]any) error
	// Delete removes the user and cascades attendance links.
	Delete(ctx context.Context, id uint) error
	// BookingsFor lists the bookings the user attends, without relations.
	BookingsFor(ctx context.Context, userID uint) ([]domain.Booking, error)
	// DetailedBookingsFor lists the bookings the user attends with room and
	// attendee relations populated.
	DetailedBookingsFor(ctx context.Context, userID uint) ([]domain.Booking, error)
}

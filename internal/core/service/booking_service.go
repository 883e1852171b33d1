package service

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// BookingService orchestrates booking operations: persistence goes through
// the booking repository, referential checks through the user and role
// repositories.
type BookingService struct {
	bookings ports.BookingRepository
	users    ports.UserRepository
	roles    ports.RoleRepository
}

func NewBookingService(bookings ports.BookingRepository, users ports.UserRepository, roles ports.RoleRepository) *BookingService {
	return &BookingService{bookings: bookings, users: users, roles: roles}
}

func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	if in.RoomID == 0 {
		return nil, domain.ErrRoomRequired
	}

	booking := &domain.Booking{
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Purpose:    in.Purpose,
		IsApproved: in.IsApproved,
		RoomID:     in.RoomID,
	}

	// Attendee ids are linked as given, without an existence check; only the
	// add-attendees operation validates them.
	return s.bookings.Create(ctx, booking, in.UserIDs)
}

func (s *BookingService) Update(ctx context.Context, id uint, in ports.UpdateBookingInput) error {
	fields := map[string]any{}
	if in.StartDate != nil {
		fields["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		fields["end_date"] = *in.EndDate
	}
	if in.Purpose != nil {
		fields["purpose"] = *in.Purpose
	}
	if in.IsApproved != nil {
		fields["is_approved"] = *in.IsApproved
	}
	if in.RoomID != nil {
		fields["room_id"] = *in.RoomID
	}

	return s.bookings.Update(ctx, id, fields, in.UserIDs, in.UserIDs != nil)
}

func (s *BookingService) Delete(ctx context.Context, id uint) error {
	return s.bookings.Delete(ctx, id)
}

// Approve flips the booking to approved. The MODERATOR check here repeats
// the route-level gate on purpose: the rule holds even if the handler is
// ever reached through different wiring.
func (s *BookingService) Approve(ctx context.Context, id uint, callerID uint) error {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		return err
	}

	roles, err := s.roles.RolesFor(ctx, callerID)
	if err != nil {
		return err
	}
	if !domain.Authorize(roles, domain.RoleModerator) {
		return domain.ErrForbidden
	}

	return s.bookings.Approve(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.FindAll(ctx)
}

func (s *BookingService) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) Attendees(ctx context.Context, id uint) ([]domain.User, error) {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.bookings.Attendees(ctx, id)
}

func (s *BookingService) AddAttendees(ctx context.Context, id uint, userIDs []uint) error {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		return err
	}

	// All-or-nothing: one missing id rejects the whole batch.
	found, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return err
	}
	if len(found) != len(userIDs) {
		return domain.ErrUsersNotFound
	}

	return s.bookings.AddAttendees(ctx, id, userIDs)
}

func (s *BookingService) RemoveAttendee(ctx context.Context, id uint, userID uint) error {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	linked, err := s.bookings.IsAttendee(ctx, id, userID)
	if err != nil {
		return err
	}
	if !linked {
		return domain.ErrUserNotInBooking
	}

	return s.bookings.RemoveAttendee(ctx, id, userID)
}

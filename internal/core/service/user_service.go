package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// UserService implements user CRUD and the role-aware profile projections.
type UserService struct {
	users ports.UserRepository
	roles ports.RoleRepository
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.withRoles(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Position:     in.Position,
		Picture:      in.Picture,
		PasswordHash: string(hash),
	}

	return s.users.Create(ctx, user, resolveRoles(in.Roles))
}

func (s *UserService) Update(ctx context.Context, id uint, in ports.UpdateUserInput) error {
	fields := map[string]any{}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Position != nil {
		fields["position"] = *in.Position
	}
	if in.Picture != nil {
		fields["picture"] = *in.Picture
	}
	if err := hashIfPresent(fields, in.Password); err != nil {
		return err
	}

	return s.users.Update(ctx, id, fields)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) Bookings(ctx context.Context, id uint) ([]domain.Booking, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.users.BookingsFor(ctx, id)
}

func (s *UserService) SessionInfo(ctx context.Context, userID uint) (*domain.User, error) {
	return s.withRoles(ctx, userID)
}

func (s *UserService) SessionBookings(ctx context.Context, userID uint) ([]domain.Booking, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.users.DetailedBookingsFor(ctx, userID)
}

func (s *UserService) withRoles(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.RolesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	return user, nil
}

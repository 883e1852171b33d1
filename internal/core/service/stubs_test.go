package service

import (
	"context"
	"time"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// stubUserStore backs both the user and role repository ports with in-memory
// maps so the service tests run without a database.
type stubUserStore struct {
	nextID uint
	users  map[uint]*domain.User
	roles  map[uint][]domain.Role
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		users: make(map[uint]*domain.User),
		roles: make(map[uint][]domain.Role),
	}
}

func (s *stubUserStore) Create(_ context.Context, user *domain.User, roles []domain.Role) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	s.nextID++
	clone := *user
	clone.ID = s.nextID
	clone.Roles = roles
	s.users[clone.ID] = &clone
	s.roles[clone.ID] = roles
	out := clone
	return &out, nil
}

func (s *stubUserStore) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserStore) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserStore) FindByIDs(_ context.Context, ids []uint) ([]domain.User, error) {
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *stubUserStore) Update(_ context.Context, id uint, fields map[string]any) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if v, ok := fields["first_name"].(string); ok {
		u.FirstName = v
	}
	if v, ok := fields["last_name"].(string); ok {
		u.LastName = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["position"].(string); ok {
		u.Position = v
	}
	if v, ok := fields["picture"].(string); ok {
		u.Picture = v
	}
	if v, ok := fields["password"].(string); ok {
		u.PasswordHash = v
	}
	return nil
}

func (s *stubUserStore) Delete(_ context.Context, id uint) error {
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	delete(s.roles, id)
	return nil
}

func (s *stubUserStore) BookingsFor(context.Context, uint) ([]domain.Booking, error) {
	return nil, nil
}

func (s *stubUserStore) DetailedBookingsFor(context.Context, uint) ([]domain.Booking, error) {
	return nil, nil
}

func (s *stubUserStore) RolesFor(_ context.Context, userID uint) ([]domain.Role, error) {
	return s.roles[userID], nil
}

// stubBookingRepo keeps bookings and attendee links in memory. Attendees are
// returned as id-only users, which is all the services inspect.
type stubBookingRepo struct {
	nextID    uint
	bookings  map[uint]*domain.Booking
	attendees map[uint][]uint
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{
		bookings:  make(map[uint]*domain.Booking),
		attendees: make(map[uint][]uint),
	}
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking, attendeeIDs []uint) (*domain.Booking, error) {
	r.nextID++
	clone := *booking
	clone.ID = r.nextID
	r.bookings[clone.ID] = &clone
	r.attendees[clone.ID] = append([]uint(nil), attendeeIDs...)
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) Update(_ context.Context, id uint, fields map[string]any, attendeeIDs []uint, replaceAttendees bool) error {
	b, ok := r.bookings[id]
	if !ok || len(fields) == 0 {
		return domain.ErrBookingNotFound
	}
	if v, ok := fields["start_date"].(string); ok {
		b.StartDate = v
	}
	if v, ok := fields["end_date"].(string); ok {
		b.EndDate = v
	}
	if v, ok := fields["purpose"].(string); ok {
		b.Purpose = v
	}
	if v, ok := fields["is_approved"].(bool); ok {
		b.IsApproved = v
	}
	if v, ok := fields["room_id"].(uint); ok {
		b.RoomID = v
	}
	if replaceAttendees {
		r.attendees[id] = append([]uint(nil), attendeeIDs...)
	}
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	delete(r.attendees, id)
	return nil
}

func (r *stubBookingRepo) FindAll(_ context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id uint) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) Approve(_ context.Context, id uint) error {
	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.IsApproved = true
	return nil
}

func (r *stubBookingRepo) Attendees(_ context.Context, bookingID uint) ([]domain.User, error) {
	ids := r.attendees[bookingID]
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.User{ID: id})
	}
	return out, nil
}

func (r *stubBookingRepo) AddAttendees(_ context.Context, bookingID uint, userIDs []uint) error {
	for _, id := range userIDs {
		linked := false
		for _, have := range r.attendees[bookingID] {
			if have == id {
				linked = true
				break
			}
		}
		if !linked {
			r.attendees[bookingID] = append(r.attendees[bookingID], id)
		}
	}
	return nil
}

func (r *stubBookingRepo) RemoveAttendee(_ context.Context, bookingID uint, userID uint) error {
	ids := r.attendees[bookingID]
	for i, id := range ids {
		if id == userID {
			r.attendees[bookingID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubBookingRepo) IsAttendee(_ context.Context, bookingID uint, userID uint) (bool, error) {
	for _, id := range r.attendees[bookingID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

// stubRoomRepo keeps rooms in memory with a booking count per room so delete
// can enforce the no-cascade rule.
type stubRoomRepo struct {
	nextID       uint
	rooms        map[uint]*domain.Room
	bookingCount map[uint]int
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{
		rooms:        make(map[uint]*domain.Room),
		bookingCount: make(map[uint]int),
	}
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r.nextID++
	clone := *room
	clone.ID = r.nextID
	r.rooms[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id uint) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r *stubRoomRepo) FindAll(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (r *stubRoomRepo) Update(_ context.Context, id uint, fields map[string]any) error {
	room, ok := r.rooms[id]
	if !ok || len(fields) == 0 {
		return domain.ErrRoomNotFound
	}
	if v, ok := fields["name"].(string); ok {
		room.Name = v
	}
	if v, ok := fields["image"].(string); ok {
		room.Image = v
	}
	if v, ok := fields["floor"].(string); ok {
		room.Floor = v
	}
	if v, ok := fields["point_of_contact_email"].(string); ok {
		room.PointOfContactEmail = v
	}
	if v, ok := fields["point_of_contact_phone"].(string); ok {
		room.PointOfContactPhone = v
	}
	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	if r.bookingCount[id] > 0 {
		return domain.ErrRoomHasBookings
	}
	delete(r.rooms, id)
	return nil
}

func (r *stubRoomRepo) BookingsFor(context.Context, uint) ([]domain.Booking, error) {
	return nil, nil
}

// stubRevoker records revoked tokens with their TTLs.
type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, token string, ttl time.Duration) error {
	r.revoked[token] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := r.revoked[token]
	return ok, nil
}

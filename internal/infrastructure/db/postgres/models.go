package postgres

import (
	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// Persistence models. Role membership and booking attendance go through the
// user_roles and user_bookings join tables; the booking→room foreign key is
// non-nullable, so a booking cannot exist without its room.

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string
	LastName  string
	Email     string `gorm:"uniqueIndex"`
	Position  string
	Picture   string
	Password  string
	Roles     []Role    `gorm:"many2many:user_roles"`
	Bookings  []Booking `gorm:"many2many:user_bookings"`
}

func (User) TableName() string { return "users" }

type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (Role) TableName() string { return "roles" }

type Room struct {
	ID                  uint   `gorm:"primaryKey;autoIncrement"`
	Name                string `gorm:"not null"`
	Image               string `gorm:"not null"`
	Floor               string `gorm:"not null"`
	PointOfContactEmail string `gorm:"not null"`
	PointOfContactPhone string `gorm:"not null"`
}

func (Room) TableName() string { return "rooms" }

type Booking struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	StartDate  string `gorm:"not null"`
	EndDate    string `gorm:"not null"`
	Purpose    string `gorm:"not null"`
	IsApproved bool   `gorm:"default:false"`
	RoomID     uint   `gorm:"not null"`
	Room       *Room
	Attendees  []User `gorm:"many2many:user_bookings"`
}

func (Booking) TableName() string { return "bookings" }

// --- domain mapping ---

func (m *User) toDomain() *domain.User {
	u := &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Position:     m.Position,
		Picture:      m.Picture,
		PasswordHash: m.Password,
	}
	for _, r := range m.Roles {
		if role, ok := domain.ParseRole(r.Name); ok {
			u.Roles = append(u.Roles, role)
		}
	}
	return u
}

func userFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Position:  u.Position,
		Picture:   u.Picture,
		Password:  u.PasswordHash,
	}
}

func usersToDomain(models []User) []domain.User {
	out := make([]domain.User, 0, len(models))
	for i := range models {
		out = append(out, *models[i].toDomain())
	}
	return out
}

func (m *Room) toDomain() *domain.Room {
	return &domain.Room{
		ID:                  m.ID,
		Name:                m.Name,
		Image:               m.Image,
		Floor:               m.Floor,
		PointOfContactEmail: m.PointOfContactEmail,
		PointOfContactPhone: m.PointOfContactPhone,
	}
}

func (m *Booking) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:         m.ID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Purpose:    m.Purpose,
		IsApproved: m.IsApproved,
		RoomID:     m.RoomID,
	}
	if m.Room != nil {
		b.Room = m.Room.toDomain()
	}
	if len(m.Attendees) > 0 {
		b.Attendees = usersToDomain(m.Attendees)
	}
	return b
}

func bookingsToDomain(models []Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(models))
	for i := range models {
		out = append(out, *models[i].toDomain())
	}
	return out
}

package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

const attendeeJoinTable = "user_bookings"

// BookingRepository is the GORM-backed booking store. Attendee links live in
// the user_bookings join table.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking, attendeeIDs []uint) (*domain.Booking, error) {
	model := Booking{
		StartDate:  booking.StartDate,
		EndDate:    booking.EndDate,
		Purpose:    booking.Purpose,
		IsApproved: booking.IsApproved,
		RoomID:     booking.RoomID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return dbErr("create booking", err)
		}
		if len(attendeeIDs) > 0 {
			if err := tx.Model(&model).Association("Attendees").Append(usersByID(attendeeIDs)); err != nil {
				return dbErr("link attendees", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, model.ID)
}

// Update patches fields and, when requested, replaces the full attendee set.
// Both steps run in one transaction so a failure cannot leave fields updated
// with attendees unlinked.
func (r *BookingRepository) Update(ctx context.Context, id uint, fields map[string]any, attendeeIDs []uint, replaceAttendees bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// An empty field patch reports not-found, the same as a missing id;
		// attendees are only replaced once the field update landed.
		if len(fields) == 0 {
			return domain.ErrBookingNotFound
		}

		var model Booking
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBookingNotFound
			}
			return dbErr("find booking", err)
		}

		if err := tx.Model(&model).Updates(fields).Error; err != nil {
			return dbErr("update booking", err)
		}
		if replaceAttendees {
			if err := tx.Model(&model).Association("Attendees").Replace(usersByID(attendeeIDs)); err != nil {
				return dbErr("replace attendees", err)
			}
		}
		return nil
	})
}

func (r *BookingRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Booking{}, id)
	if res.Error != nil {
		return dbErr("delete booking", res.Error)
	}
	if res.RowsAffected != 1 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	var models []Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Attendees").
		Find(&models).Error
	if err != nil {
		return nil, dbErr("list bookings", err)
	}
	return bookingsToDomain(models), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uint) (*domain.Booking, error) {
	var model Booking
	err := r.db.WithContext(ctx).Preload("Attendees").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, dbErr("find booking", err)
	}
	return model.toDomain(), nil
}

func (r *BookingRepository) Approve(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Update("is_approved", true)
	if res.Error != nil {
		return dbErr("approve booking", res.Error)
	}
	if res.RowsAffected != 1 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Attendees(ctx context.Context, bookingID uint) ([]domain.User, error) {
	var models []User
	err := r.db.WithContext(ctx).Model(&Booking{ID: bookingID}).Association("Attendees").Find(&models)
	if err != nil {
		return nil, dbErr("list attendees", err)
	}
	return usersToDomain(models), nil
}

func (r *BookingRepository) AddAttendees(ctx context.Context, bookingID uint, userIDs []uint) error {
	err := r.db.WithContext(ctx).Model(&Booking{ID: bookingID}).Association("Attendees").Append(usersByID(userIDs))
	if err != nil {
		return dbErr("add attendees", err)
	}
	return nil
}

func (r *BookingRepository) RemoveAttendee(ctx context.Context, bookingID uint, userID uint) error {
	err := r.db.WithContext(ctx).Model(&Booking{ID: bookingID}).Association("Attendees").Delete(&User{ID: userID})
	if err != nil {
		return dbErr("remove attendee", err)
	}
	return nil
}

func (r *BookingRepository) IsAttendee(ctx context.Context, bookingID uint, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(attendeeJoinTable).
		Where("booking_id = ? AND user_id = ?", bookingID, userID).
		Count(&count).Error
	if err != nil {
		return false, dbErr("check attendee link", err)
	}
	return count > 0, nil
}

// usersByID builds id-only user rows for association writes; GORM links the
// join records without touching the user columns.
func usersByID(ids []uint) []User {
	models := make([]User, 0, len(ids))
	for _, id := range ids {
		models = append(models, User{ID: id})
	}
	return models
}

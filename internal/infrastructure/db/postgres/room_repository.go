package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// RoomRepository is the GORM-backed room store.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	model := Room{
		Name:                room.Name,
		Image:               room.Image,
		Floor:               room.Floor,
		PointOfContactEmail: room.PointOfContactEmail,
		PointOfContactPhone: room.PointOfContactPhone,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, dbErr("create room", err)
	}
	return model.toDomain(), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uint) (*domain.Room, error) {
	var model Room
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, dbErr("find room", err)
	}
	return model.toDomain(), nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	var models []Room
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, dbErr("list rooms", err)
	}
	rooms := make([]domain.Room, 0, len(models))
	for i := range models {
		rooms = append(rooms, *models[i].toDomain())
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	// An empty patch affects no rows, which reports not-found just like a
	// missing id does.
	if len(fields) == 0 {
		return domain.ErrRoomNotFound
	}
	res := r.db.WithContext(ctx).Model(&Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return dbErr("update room", res.Error)
	}
	if res.RowsAffected != 1 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uint) error {
	var model Room
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoomNotFound
		}
		return dbErr("find room", err)
	}

	// No cascade: the booking foreign key is non-nullable, so deletion is
	// rejected while bookings reference the room.
	var count int64
	if err := r.db.WithContext(ctx).Model(&Booking{}).Where("room_id = ?", id).Count(&count).Error; err != nil {
		return dbErr("count room bookings", err)
	}
	if count > 0 {
		return domain.ErrRoomHasBookings
	}

	if err := r.db.WithContext(ctx).Delete(&model).Error; err != nil {
		return dbErr("delete room", err)
	}
	return nil
}

func (r *RoomRepository) BookingsFor(ctx context.Context, roomID uint) ([]domain.Booking, error) {
	var models []Booking
	err := r.db.WithContext(ctx).
		Preload("Attendees").
		Where("room_id = ?", roomID).
		Find(&models).Error
	if err != nil {
		return nil, dbErr("list room bookings", err)
	}
	return bookingsToDomain(models), nil
}

package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// UserRepository is the GORM-backed user store.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User, roles []domain.Role) (*domain.User, error) {
	model := userFromDomain(user)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrUserExists
			}
			return dbErr("create user", err)
		}

		names := make([]string, 0, len(roles))
		for _, role := range roles {
			names = append(names, string(role))
		}
		var roleRows []Role
		if err := tx.Where("name IN ?", names).Find(&roleRows).Error; err != nil {
			return dbErr("resolve roles", err)
		}
		if err := tx.Model(model).Association("Roles").Replace(roleRows); err != nil {
			return dbErr("assign roles", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := model.toDomain()
	created.Roles = roles
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var model User
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, dbErr("find user", err)
	}
	return model.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var model User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, dbErr("find user by email", err)
	}
	return model.toDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var models []User
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, dbErr("list users", err)
	}
	return usersToDomain(models), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, dbErr("find users by ids", err)
	}
	return usersToDomain(models), nil
}

func (r *UserRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	var model User
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return dbErr("find user", err)
	}
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(&model).Updates(fields).Error; err != nil {
		return dbErr("update user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	var model User
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return dbErr("find user", err)
	}
	// Select(Associations) cascades the role and attendance join rows.
	if err := r.db.WithContext(ctx).Select(clause.Associations).Delete(&model).Error; err != nil {
		return dbErr("delete user", err)
	}
	return nil
}

func (r *UserRepository) BookingsFor(ctx context.Context, userID uint) ([]domain.Booking, error) {
	var models []Booking
	err := r.db.WithContext(ctx).Model(&User{ID: userID}).Association("Bookings").Find(&models)
	if err != nil {
		return nil, dbErr("list user bookings", err)
	}
	return bookingsToDomain(models), nil
}

func (r *UserRepository) DetailedBookingsFor(ctx context.Context, userID uint) ([]domain.Booking, error) {
	var model User
	err := r.db.WithContext(ctx).
		Preload("Bookings.Room").
		Preload("Bookings.Attendees").
		First(&model, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, dbErr("list user bookings", err)
	}
	return bookingsToDomain(model.Bookings), nil
}

package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// RoleRepository resolves current role memberships. Reads hit the store on
// every call; nothing is cached, so a revoked role is gone on the next
// request.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) RolesFor(ctx context.Context, userID uint) ([]domain.Role, error) {
	var rows []Role
	err := r.db.WithContext(ctx).Model(&User{ID: userID}).Association("Roles").Find(&rows)
	if err != nil {
		return nil, dbErr("load user roles", err)
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		if role, ok := domain.ParseRole(row.Name); ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

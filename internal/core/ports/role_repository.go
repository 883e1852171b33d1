package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// RoleRepository resolves a user's current role memberships. The RBAC
// middleware reloads memberships on every request instead of trusting
// anything cached in the token.
type RoleRepository interface {
	RolesFor(ctx context.Context, userID uint) ([]domain.Role, error)
}

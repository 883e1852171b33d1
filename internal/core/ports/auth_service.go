package ports

import (
	"context"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// SignupInput carries the fields accepted on registration. Roles is a list
// of role names; when empty the default USER role is assigned.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Position  string
	Picture   string
	Password  string
	Roles     []string
}

// SigninResult is the authenticated session payload: the user's profile, the
// prefixed authority strings for every role held, and the signed token.
type SigninResult struct {
	User        *domain.User
	Authorities []string
	Token       string
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Signin(ctx context.Context, email, password string) (*SigninResult, error)
	// Logout revokes the presented token. An absent or unparseable token is
	// not an error; the server holds no session either way.
	Logout(ctx context.Context, token string) error
}

package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// AuthService implements signup, signin and logout. Tokens carry only the
// user id; roles are always re-resolved from the store on later requests.
type AuthService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, roles: roles, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roles := resolveRoles(in.Roles)

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Position:     in.Position,
		Picture:      in.Picture,
		PasswordHash: string(hash),
	}

	created, err := s.users.Create(ctx, user, roles)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (*ports.SigninResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// Wrong password is deliberately not a 404: the account exists.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidPassword
	}

	roles, err := s.roles.RolesFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.SigninResult{
		User:        user,
		Authorities: user.Authorities(),
		Token:       token,
	}, nil
}

// Logout revokes the token for whatever lifetime it has left. The server is
// otherwise stateless: without the denylist the token would stay valid until
// natural expiry.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		// Not our token or already expired; nothing worth denylisting.
		return nil
	}

	ttl := s.tokenTTL
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return s.revoker.Revoke(ctx, token, ttl)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// resolveRoles maps requested role names onto the closed vocabulary and
// defaults to USER. Unknown names are skipped rather than rejected; if none
// survive, the default applies.
func resolveRoles(names []string) []domain.Role {
	roles := make([]domain.Role, 0, len(names))
	for _, name := range names {
		if r, ok := domain.ParseRole(name); ok {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleUser}
	}
	return roles
}

// hashIfPresent rehashes a password patch in place. Shared with the user
// service's update path.
func hashIfPresent(fields map[string]any, password *string) error {
	if password == nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fields["password"] = string(hash)
	return nil
}

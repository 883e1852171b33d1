package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// TokenHeader is the custom header carrying the session token.
const TokenHeader = "x-access-token"

const userIDKey = "userID"

// Auth validates the session token and injects the caller's user id into the
// request context. A missing token is 403, an invalid, expired or revoked
// one is 401 — the two verification steps fail differently on purpose.
// The token carries only the user id; roles are never trusted from it.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return echo.NewHTTPError(http.StatusForbidden, "no token provided")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), token)
				if err != nil {
					return err
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrTokenRevoked.Error())
				}
			}

			id, ok := claims["id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			c.Set(userIDKey, uint(id))

			return next(c)
		}
	}
}

// UserID extracts the authenticated caller's id injected by Auth.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDKey).(uint)
	return id, ok
}

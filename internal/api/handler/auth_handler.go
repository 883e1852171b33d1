package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartoffice/room-booking-api/internal/api/metrics"
	"github.com/smartoffice/room-booking-api/internal/api/middleware"
	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for signup, signin and logout.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type signupRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email" validate:"required,email"`
	Position  string   `json:"position"`
	Picture   string   `json:"picture"`
	Password  string   `json:"password" validate:"required"`
	Roles     []string `json:"roles"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signinResponse struct {
	ID          uint     `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Position    string   `json:"position"`
	Picture     string   `json:"picture"`
	Roles       []string `json:"roles"`
	AccessToken string   `json:"accessToken"`
}

// invalidPasswordResponse is the one auth failure with its own body shape:
// the account exists, so the client gets an explicit null token, not a 404.
type invalidPasswordResponse struct {
	AccessToken *string `json:"accessToken"`
	Message     string  `json:"message"`
}

// Signup registers a new user.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Position:  req.Position,
		Picture:   req.Picture,
		Password:  req.Password,
		Roles:     req.Roles,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User was registered successfully!"})
}

// Signin authenticates a user and returns the session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Login credentials"
// @Success      200   {object}  signinResponse
// @Failure      401   {object}  invalidPasswordResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPassword) {
			metrics.SigninsTotal.WithLabelValues("wrong_password").Inc()
			return c.JSON(http.StatusUnauthorized, invalidPasswordResponse{
				AccessToken: nil,
				Message:     "Invalid Password!",
			})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.SigninsTotal.WithLabelValues("unknown_email").Inc()
		}
		return err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, signinResponse{
		ID:          result.User.ID,
		FirstName:   result.User.FirstName,
		LastName:    result.User.LastName,
		Email:       result.User.Email,
		Position:    result.User.Position,
		Picture:     result.User.Picture,
		Roles:       result.Authorities,
		AccessToken: result.Token,
	})
}

// Logout revokes the presented token. The endpoint succeeds with or without
// one; the server keeps no session beyond the denylist entry.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := c.Request().Header.Get(middleware.TokenHeader)

	if err := h.service.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	if token != "" {
		metrics.TokensRevokedTotal.Inc()
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful!"})
}

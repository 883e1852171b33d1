package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartoffice/room-booking-api/internal/api/middleware"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations, including the
// session-user endpoints under /api/user.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Position  *string `json:"position"`
	Picture   *string `json:"picture"`
	Password  *string `json:"password"`
}

// List handles GET /api/users. The password hash never serializes.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:id, with current role names flattened onto the
// profile.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users — the admin-create path, sharing signup
// semantics including the default USER role.
func (h *UserHandler) Create(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.Create(c.Request().Context(), ports.SignupInput{
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
	return c.JSON(http.StatusOK, messageResponse{Message: "User was registered successfully!"})
}

// Update handles PUT /api/users/:id. A password in the patch is rehashed;
// everything else lands as given.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Position:  req.Position,
		Picture:   req.Picture,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully!"})
}

// Delete handles DELETE /api/users/:id, cascading attendance links.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully!"})
}

// Bookings handles GET /api/users/:id/bookings.
func (h *UserHandler) Bookings(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	bookings, err := h.service.Bookings(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// SessionInfo handles GET /api/user — the calling user's own profile.
func (h *UserHandler) SessionInfo(c echo.Context) error {
	callerID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.service.SessionInfo(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SessionBookings handles GET /api/user/bookings — the calling user's
// bookings with room and attendee relations.
func (h *UserHandler) SessionBookings(c echo.Context) error {
	callerID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	bookings, err := h.service.SessionBookings(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

type createRoomRequest struct {
	Name                string `json:"name" validate:"required"`
	Image               string `json:"image" validate:"required"`
	Floor               string `json:"floor" validate:"required"`
	PointOfContactEmail string `json:"pointOfContactEmail" validate:"required"`
	PointOfContactPhone string `json:"pointOfContactPhone" validate:"required"`
}

type updateRoomRequest struct {
	Name                *string `json:"name"`
	Image               *string `json:"image"`
	Floor               *string `json:"floor"`
	PointOfContactEmail *string `json:"pointOfContactEmail"`
	PointOfContactPhone *string `json:"pointOfContactPhone"`
}

// Create handles POST /api/rooms. All five fields are required.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), ports.CreateRoomInput{
		Name:                req.Name,
		Image:               req.Image,
		Floor:               req.Floor,
		PointOfContactEmail: req.PointOfContactEmail,
		PointOfContactPhone: req.PointOfContactPhone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// List handles GET /api/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /api/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	room, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Update handles PUT /api/rooms/:id. Unspecified fields stay untouched.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.Update(c.Request().Context(), id, ports.UpdateRoomInput{
		Name:                req.Name,
		Image:               req.Image,
		Floor:               req.Floor,
		PointOfContactEmail: req.PointOfContactEmail,
		PointOfContactPhone: req.PointOfContactPhone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Room updated successfully."})
}

// Delete handles DELETE /api/rooms/:id. Rooms with live bookings are not
// deleted; there is no cascade.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Room deleted successfully."})
}

// Bookings handles GET /api/rooms/:roomId/bookings.
func (h *RoomHandler) Bookings(c echo.Context) error {
	id, err := pathID(c, "roomId")
	if err != nil {
		return err
	}

	bookings, err := h.service.Bookings(c.Request().Context(), id)
	if err != nil {
		return err
	}

	items := make([]bookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, toBookingListItem(b))
	}
	return c.JSON(http.StatusOK, items)
}

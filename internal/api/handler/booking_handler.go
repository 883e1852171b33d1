package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartoffice/room-booking-api/internal/api/metrics"
	"github.com/smartoffice/room-booking-api/internal/api/middleware"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Purpose    string `json:"purpose"`
	RoomID     uint   `json:"roomId"`
	IsApproved bool   `json:"isApproved"`
	UserIDs    []uint `json:"userIds"`
}

type updateBookingRequest struct {
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
	Purpose    *string `json:"purpose"`
	IsApproved *bool   `json:"isApproved"`
	RoomID     *uint   `json:"roomId"`
	UserIDs    []uint  `json:"userIds"`
}

type addUsersRequest struct {
	UserIDs []uint `json:"userIds" validate:"required,min=1"`
}

type createBookingResponse struct {
	Message string        `json:"message"`
	Booking bookingDetail `json:"booking"`
}

// List handles GET /api/bookings.
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   bookingListItem
// @Failure      500  {object}  map[string]string
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]bookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, toBookingListItem(b))
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/bookings/:bookingId.
//
// @Summary      Get a booking by id
// @Tags         bookings
// @Produce      json
// @Param        bookingId  path      int  true  "Booking id"
// @Success      200        {object}  map[string]bookingDetail
// @Failure      404        {object}  map[string]string
// @Router       /api/bookings/{bookingId} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	booking, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bookingDetail{"booking": toBookingDetail(booking)})
}

// Attendees handles GET /api/bookings/:bookingId/users.
func (h *BookingHandler) Attendees(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	users, err := h.service.Attendees(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /api/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      200   {object}  createBookingResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Purpose:    req.Purpose,
		RoomID:     req.RoomID,
		IsApproved: req.IsApproved,
		UserIDs:    req.UserIDs,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, createBookingResponse{
		Message: "Booking created successfully.",
		Booking: toBookingDetail(booking),
	})
}

// Update handles PUT /api/bookings/:bookingId. A userIds field replaces the
// full attendee set.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.Update(c.Request().Context(), id, ports.UpdateBookingInput{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Purpose:    req.Purpose,
		IsApproved: req.IsApproved,
		RoomID:     req.RoomID,
		UserIDs:    req.UserIDs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Booking updated successfully."})
}

// Approve handles PUT /api/bookings/:bookingId/approve.
//
// @Summary      Approve a booking
// @Tags         bookings
// @Produce      json
// @Param        bookingId  path      int  true  "Booking id"
// @Success      200        {object}  messageResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/bookings/{bookingId}/approve [put]
func (h *BookingHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	callerID, ok := middleware.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := h.service.Approve(c.Request().Context(), id, callerID); err != nil {
		return err
	}

	metrics.BookingsApprovedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking approved successfully."})
}

// Delete handles DELETE /api/bookings/:bookingId.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking deleted successfully."})
}

// AddUsers handles POST /api/bookings/:bookingId/users. The batch is
// all-or-nothing: one unknown id rejects every link.
func (h *BookingHandler) AddUsers(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}

	var req addUsersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.AddAttendees(c.Request().Context(), id, req.UserIDs); err != nil {
		return err
	}

	metrics.AttendeeChangesTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Users added to the booking successfully."})
}

// RemoveUser handles DELETE /api/bookings/:bookingId/users/:userId.
func (h *BookingHandler) RemoveUser(c echo.Context) error {
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.service.RemoveAttendee(c.Request().Context(), bookingID, userID); err != nil {
		return err
	}

	metrics.AttendeeChangesTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User removed from the booking successfully."})
}

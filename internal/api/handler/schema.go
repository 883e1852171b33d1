package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// messageResponse is the success envelope for mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// pathID parses a numeric path parameter. A malformed id is caller-fixable
// input, not a missing row.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// --- booking projections ---

type roomRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// attendeeSummary is the reduced attendee projection used on listings.
type attendeeSummary struct {
	ID       uint   `json:"id"`
	Position string `json:"position"`
	Picture  string `json:"picture"`
	Email    string `json:"email"`
}

// attendeeDetail is the full attendee projection used on single-booking reads.
type attendeeDetail struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	Picture   string `json:"picture"`
	Email     string `json:"email"`
}

type bookingListItem struct {
	ID         uint              `json:"id"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	Purpose    string            `json:"purpose"`
	IsApproved bool              `json:"isApproved"`
	Room       *roomRef          `json:"room,omitempty"`
	Users      []attendeeSummary `json:"users"`
}

type bookingDetail struct {
	ID         uint             `json:"id"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	Purpose    string           `json:"purpose"`
	IsApproved bool             `json:"isApproved"`
	RoomID     uint             `json:"roomId"`
	Users      []attendeeDetail `json:"users"`
}

func toBookingListItem(b domain.Booking) bookingListItem {
	item := bookingListItem{
		ID:         b.ID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Purpose:    b.Purpose,
		IsApproved: b.IsApproved,
		Users:      make([]attendeeSummary, 0, len(b.Attendees)),
	}
	if b.Room != nil {
		item.Room = &roomRef{ID: b.Room.ID, Name: b.Room.Name}
	}
	for _, u := range b.Attendees {
		item.Users = append(item.Users, attendeeSummary{
			ID:       u.ID,
			Position: u.Position,
			Picture:  u.Picture,
			Email:    u.Email,
		})
	}
	return item
}

func toBookingDetail(b *domain.Booking) bookingDetail {
	detail := bookingDetail{
		ID:         b.ID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Purpose:    b.Purpose,
		IsApproved: b.IsApproved,
		RoomID:     b.RoomID,
		Users:      make([]attendeeDetail, 0, len(b.Attendees)),
	}
	for _, u := range b.Attendees {
		detail.Users = append(detail.Users, attendeeDetail{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Position:  u.Position,
			Picture:   u.Picture,
			Email:     u.Email,
		})
	}
	return detail
}

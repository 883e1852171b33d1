package domain

// Booking reserves a room for a date range. Its lifecycle is a single
// one-way transition: created unapproved, then approved by a moderator.
// There is no path back to unapproved; deletion is terminal.
//
// Dates travel as opaque strings. No ordering or overlap constraint is
// enforced; two bookings may reserve the same room for the same range.
type Booking struct {
	ID         uint   `json:"id"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Purpose    string `json:"purpose"`
	IsApproved bool   `json:"isApproved"`
	RoomID     uint   `json:"roomId"`
	Room       *Room  `json:"room,omitempty"`
	Attendees  []User `json:"users,omitempty"`
}

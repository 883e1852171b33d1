package domain

// Room is a bookable space with point-of-contact metadata. A room owns its
// bookings: the booking foreign key is non-nullable and a room cannot be
// deleted while bookings reference it.
type Room struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Image               string `json:"image"`
	Floor               string `json:"floor"`
	PointOfContactEmail string `json:"pointOfContactEmail"`
	PointOfContactPhone string `json:"pointOfContactPhone"`
}

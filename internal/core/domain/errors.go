package domain

import "errors"

// Sentinel errors shared across services and repositories. The central HTTP
// error handler maps each of these to a fixed status code and envelope.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrTokenRevoked     = errors.New("token has been revoked")
	ErrForbidden        = errors.New("you are not authorized to perform this action")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomDataRequired = errors.New("all room data must be provided")
	ErrRoomHasBookings  = errors.New("room has existing bookings")
	ErrRoomRequired     = errors.New("roomId cannot be null")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUsersNotFound    = errors.New("one or more users not found")
	ErrUserNotInBooking = errors.New("user is not associated with the booking")

	// ErrDatabase tags unexpected store failures. The HTTP layer renders it
	// as a generic message and never leaks the underlying cause.
	ErrDatabase = errors.New("database error")
)

package booking

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidInterval  = errors.New("end time must be after start time")
	ErrRoomNotFound     = errors.New("room not found")
	ErrConflict         = errors.New("booking time conflicts with existing booking")
	ErrBookingNotFound  = errors.New("booking not found")

	// ErrStoreUnavailable marks persistence failures; it is the only server-side fault.
	ErrStoreUnavailable = errors.New("store unavailable")
)

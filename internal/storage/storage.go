package storage

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("booking overlaps an existing booking")
)

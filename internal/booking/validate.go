package booking

import (
	"fmt"
	"time"
)

// ValidateInterval rejects empty and reversed intervals.
func ValidateInterval(candidate Interval) error {
	if !candidate.End.After(candidate.Start) {
		return ErrInvalidInterval
	}

	return nil
}

// ValidateNewBooking decides whether candidate can be booked on a room that
// already holds the existing intervals. A nil result means accept.
//
// The caller must keep the room serialized from the moment existing was read
// until the new booking is stored.
func ValidateNewBooking(candidate Interval, roomExists bool, existing []Interval) error {
	if err := ValidateInterval(candidate); err != nil {
		return err
	}

	if !roomExists {
		return ErrRoomNotFound
	}

	for _, b := range existing {
		if candidate.Overlaps(b) {
			return fmt.Errorf("%w (%s - %s)", ErrConflict,
				b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339))
		}
	}

	return nil
}

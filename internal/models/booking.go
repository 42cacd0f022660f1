package models

import (
	"encoding/json"
	"roomBooker/internal/booking"
	"time"
)

type Booking struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func (b Booking) Interval() booking.Interval {
	return booking.Interval{Start: b.StartTime, End: b.EndTime}
}

// MarshalJSON writes instants in the UTC wire form.
func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int64  `json:"id"`
		RoomID    int64  `json:"room_id"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Code      string `json:"code"`
		CreatedAt string `json:"created_at"`
	}{
		ID:        b.ID,
		RoomID:    b.RoomID,
		StartTime: booking.FormatTimestamp(b.StartTime),
		EndTime:   booking.FormatTimestamp(b.EndTime),
		Code:      b.Code,
		CreatedAt: booking.FormatTimestamp(b.CreatedAt),
	})
}

func Intervals(bookings []Booking) []booking.Interval {
	out := make([]booking.Interval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Interval())
	}

	return out
}

// Package booking holds the room booking rules: the daily slot grid, the
// half-open overlap predicate, availability and conflict validation.
// Everything here is pure and safe for concurrent use.
package booking

import (
	"fmt"
	"time"
)

const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 18
	DefaultSlotWidth = time.Hour

	labelLayout = "15:04"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Intervals that only touch at an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Slot is one cell of the daily grid.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// Label returns the slot start as 24-hour HH:MM.
func (s Slot) Label() string {
	return s.Start.Format(labelLayout)
}

// Grid describes the bookable window of a day: contiguous slots of
// SlotWidth from OpenHour to CloseHour in Location.
type Grid struct {
	OpenHour  int
	CloseHour int
	SlotWidth time.Duration
	Location  *time.Location
}

func NewGrid(openHour, closeHour int, slotWidth time.Duration, loc *time.Location) (Grid, error) {
	const op = "booking.NewGrid"

	switch {
	case loc == nil:
		return Grid{}, fmt.Errorf("%s: location is required", op)
	case openHour < 0 || closeHour > 24:
		return Grid{}, fmt.Errorf("%s: hours must be within 0..24, got %d..%d", op, openHour, closeHour)
	case closeHour <= openHour:
		return Grid{}, fmt.Errorf("%s: close hour %d must be after open hour %d", op, closeHour, openHour)
	case slotWidth <= 0:
		return Grid{}, fmt.Errorf("%s: slot width must be positive", op)
	case slotWidth > time.Duration(closeHour-openHour)*time.Hour:
		return Grid{}, fmt.Errorf("%s: slot width %s does not fit the window", op, slotWidth)
	}

	return Grid{
		OpenHour:  openHour,
		CloseHour: closeHour,
		SlotWidth: slotWidth,
		Location:  loc,
	}, nil
}

// DefaultGrid is the 09:00-18:00 hourly grid in loc.
func DefaultGrid(loc *time.Location) Grid {
	return Grid{
		OpenHour:  DefaultOpenHour,
		CloseHour: DefaultCloseHour,
		SlotWidth: DefaultSlotWidth,
		Location:  loc,
	}
}

// SlotsForDay returns the grid slots of day's calendar date, in order.
func (g Grid) SlotsForDay(day time.Time) []Slot {
	day = g.Normalize(day)
	y, m, d := day.Date()

	open := time.Date(y, m, d, g.OpenHour, 0, 0, 0, g.Location)
	closing := time.Date(y, m, d, g.CloseHour, 0, 0, 0, g.Location)

	slots := make([]Slot, 0, int(closing.Sub(open)/g.SlotWidth))
	for start := open; !start.Add(g.SlotWidth).After(closing); start = start.Add(g.SlotWidth) {
		slots = append(slots, Slot{Start: start, End: start.Add(g.SlotWidth)})
	}

	return slots
}

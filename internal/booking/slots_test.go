package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

func at(hour, minute int) time.Time {
	return time.Date(2024, 12, 25, hour, minute, 0, 0, ist)
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{
			name:     "Disjoint",
			a:        Interval{at(9, 0), at(10, 0)},
			b:        Interval{at(11, 0), at(12, 0)},
			expected: false,
		},
		{
			name:     "Touching end to start",
			a:        Interval{at(9, 0), at(10, 0)},
			b:        Interval{at(10, 0), at(11, 0)},
			expected: false,
		},
		{
			name:     "Touching start to end",
			a:        Interval{at(10, 0), at(11, 0)},
			b:        Interval{at(9, 0), at(10, 0)},
			expected: false,
		},
		{
			name:     "Partial overlap",
			a:        Interval{at(10, 0), at(11, 0)},
			b:        Interval{at(10, 30), at(11, 30)},
			expected: true,
		},
		{
			name:     "Contained",
			a:        Interval{at(9, 0), at(12, 0)},
			b:        Interval{at(10, 0), at(10, 15)},
			expected: true,
		},
		{
			name:     "Identical",
			a:        Interval{at(10, 0), at(11, 0)},
			b:        Interval{at(10, 0), at(11, 0)},
			expected: true,
		},
		{
			name:     "Same instant in another zone",
			a:        Interval{at(10, 0), at(11, 0)},
			b:        Interval{at(10, 0).UTC(), at(10, 30).UTC()},
			expected: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestSlotsForDay(t *testing.T) {
	t.Parallel()

	grid := DefaultGrid(ist)

	slots := grid.SlotsForDay(at(15, 45))
	require.Len(t, slots, 9)

	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(18, 0), slots[len(slots)-1].End)

	for i, slot := range slots {
		assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
		if i > 0 {
			assert.Equal(t, slots[i-1].End, slot.Start, "slots must be contiguous")
		}
	}

	assert.Equal(t, "09:00", slots[0].Label())
	assert.Equal(t, "17:00", slots[8].Label())
}

func TestSlotsForDayUsesCanonicalDate(t *testing.T) {
	t.Parallel()

	grid := DefaultGrid(ist)

	// 20:00 UTC on the 24th is already the 25th in IST.
	slots := grid.SlotsForDay(time.Date(2024, 12, 24, 20, 0, 0, 0, time.UTC))
	require.NotEmpty(t, slots)

	assert.Equal(t, at(9, 0), slots[0].Start)
}

func TestSlotsForDayIsFreshPerCall(t *testing.T) {
	t.Parallel()

	grid := DefaultGrid(ist)

	first := grid.SlotsForDay(at(0, 0))
	first[0].Start = time.Time{}

	second := grid.SlotsForDay(at(0, 0))
	assert.Equal(t, at(9, 0), second[0].Start)
}

func TestNewGrid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		open      int
		close     int
		width     time.Duration
		loc       *time.Location
		wantErr   bool
		wantSlots int
	}{
		{name: "Default hours", open: 9, close: 18, width: time.Hour, loc: ist, wantSlots: 9},
		{name: "Half hour slots", open: 9, close: 12, width: 30 * time.Minute, loc: ist, wantSlots: 6},
		{name: "Width not dividing window", open: 9, close: 11, width: 45 * time.Minute, loc: ist, wantSlots: 2},
		{name: "Whole day", open: 0, close: 24, width: time.Hour, loc: time.UTC, wantSlots: 24},
		{name: "Nil location", open: 9, close: 18, width: time.Hour, loc: nil, wantErr: true},
		{name: "Close before open", open: 18, close: 9, width: time.Hour, loc: ist, wantErr: true},
		{name: "Equal hours", open: 9, close: 9, width: time.Hour, loc: ist, wantErr: true},
		{name: "Hour out of range", open: 9, close: 25, width: time.Hour, loc: ist, wantErr: true},
		{name: "Zero width", open: 9, close: 18, width: 0, loc: ist, wantErr: true},
		{name: "Width larger than window", open: 9, close: 10, width: 2 * time.Hour, loc: ist, wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			grid, err := NewGrid(tc.open, tc.close, tc.width, tc.loc)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Len(t, grid.SlotsForDay(time.Date(2024, 12, 25, 0, 0, 0, 0, tc.loc)), tc.wantSlots)
		})
	}
}

package booking

// ComputeAvailability returns the labels of the slots that no existing
// booking overlaps, in grid order. A booking touching any part of a slot
// takes the whole slot.
func ComputeAvailability(slots []Slot, existing []Interval) []string {
	available, _ := Partition(slots, existing)
	return available
}

// Partition splits the slots into available and unavailable labels. Each
// slot lands in exactly one of the two lists.
func Partition(slots []Slot, existing []Interval) (available, unavailable []string) {
	available = make([]string, 0, len(slots))

	for _, slot := range slots {
		if isBooked(slot.Interval(), existing) {
			unavailable = append(unavailable, slot.Label())
			continue
		}
		available = append(available, slot.Label())
	}

	return available, unavailable
}

func isBooked(slot Interval, existing []Interval) bool {
	for _, b := range existing {
		if slot.Overlaps(b) {
			return true
		}
	}

	return false
}

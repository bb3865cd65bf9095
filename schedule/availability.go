package schedule

// IsRoomAvailable reports whether the whole duration of block fits inside
// a single physical-room window for (day, room). A block that straddles
// two adjacent windows is not available: the physical room changes mid-day
// and one talk cannot span the change.
//
// Callers are expected to hand in a well-formed block; an unparseable one
// reads as unavailable.
func IsRoomAvailable(day Day, room int, block string) bool {
	start, end, err := ParseTimeBlock(block)
	if err != nil {
		return false
	}
	for _, w := range GetWindows(day, room) {
		if w.OpensAt <= start && end <= w.ClosesAt {
			return true
		}
	}
	return false
}

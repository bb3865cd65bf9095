package schedule

// Day identifies one of the two congress days. The dashboard and the
// imported data still speak the original date labels, so both directions
// are kept here.
type Day int

const (
	DayOne Day = iota + 1 // martes 14 de octubre
	DayTwo                // miércoles 15 de octubre
)

var dayLabels = map[Day]string{
	DayOne: "martes 14 de octubre",
	DayTwo: "miércoles 15 de octubre",
}

func (d Day) Valid() bool {
	return d == DayOne || d == DayTwo
}

func (d Day) Label() string {
	return dayLabels[d]
}

// ParseDay maps a day label to its Day value.
func ParseDay(label string) (Day, bool) {
	for d, l := range dayLabels {
		if l == label {
			return d, true
		}
	}
	return 0, false
}

// Days returns both congress days in order.
func Days() []Day {
	return []Day{DayOne, DayTwo}
}

// SymposiumRange returns the inclusive virtual-room range reserved for
// simposios on the given day. The ranges are asymmetric: the second day
// runs fewer parallel mesas, so the reserved block starts earlier.
func (d Day) SymposiumRange() (lo, hi int) {
	switch d {
	case DayOne:
		return 22, 32
	case DayTwo:
		return 16, 26
	}
	return 0, -1
}

// RegularRange returns the inclusive virtual-room range open to ponencias.
func (d Day) RegularRange() (lo, hi int) {
	switch d {
	case DayOne:
		return 1, 21
	case DayTwo:
		return 1, 15
	}
	return 0, -1
}

// IsSymposiumRoom reports whether room falls in the day's reserved range.
// The range constants are the source of truth; the IsSymposiumRoom flags
// in the room table are derived from them (see ValidateRoomTable).
func IsSymposiumRoom(d Day, room int) bool {
	lo, hi := d.SymposiumRange()
	return room >= lo && room <= hi
}

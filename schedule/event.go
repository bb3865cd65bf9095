package schedule

// Event is the core's read-only view of a scheduled congress event. The
// zero value of Room, Day and TimeBlock means "not assigned yet"; partial
// assignment is a valid state that the analyses simply skip.
type Event struct {
	ID        string
	Room      int
	Day       Day
	TimeBlock string
	Type      string
	Status    string
}

const (
	TypePonencia = "ponencia"
	TypeSimposio = "simposio"

	StatusDraft     = "borrador"
	StatusPublished = "publicado"
)

// FullyScheduled reports whether room, day and time block are all set.
func (e Event) FullyScheduled() bool {
	return e.Room > 0 && e.Day.Valid() && e.TimeBlock != ""
}

// SlotKey is the (day, room, time-block) tuple that bounds co-location:
// events sharing a SlotKey share one mesa, and capacity constrains exactly
// this tuple.
type SlotKey struct {
	Day       Day
	Room      int
	TimeBlock string
}

func (e Event) Slot() SlotKey {
	return SlotKey{Day: e.Day, Room: e.Room, TimeBlock: e.TimeBlock}
}

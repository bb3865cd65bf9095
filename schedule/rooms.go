package schedule

import "fmt"

// PhysicalRoomWindow is one stretch of the day during which a virtual room
// number is backed by an actual physical room. A virtual room may map to
// different physical rooms before and after the midday break, each window
// independently bounding which time blocks are legal.
type PhysicalRoomWindow struct {
	Name            string `json:"name"`
	OpensAt         int    `json:"opensAt"`  // minutes since midnight
	ClosesAt        int    `json:"closesAt"` // minutes since midnight
	Capacity        int    `json:"capacity"` // seats, informational
	IsSymposiumRoom bool   `json:"isSymposiumRoom"`
}

func hm(h, m int) int { return h*60 + m }

// roomTable is the static per-day room map. It used to live as executable
// source shipped to the dashboard; here it is plain data built once at
// startup. Gaps between windows are deliberate: a block falling in a gap
// is unavailable.
var roomTable = buildRoomTable()

func buildRoomTable() map[Day]map[int][]PhysicalRoomWindow {
	table := make(map[Day]map[int][]PhysicalRoomWindow)

	for _, day := range Days() {
		rooms := make(map[int][]PhysicalRoomWindow)

		lo, hi := day.RegularRange()
		for room := lo; room <= hi; room++ {
			rooms[room] = []PhysicalRoomWindow{
				{Name: fmt.Sprintf("A-%d", 100+room), OpensAt: hm(8, 30), ClosesAt: hm(13, 50), Capacity: 45},
				{Name: fmt.Sprintf("A-%d", 100+room), OpensAt: hm(15, 0), ClosesAt: hm(19, 50), Capacity: 45},
			}
		}

		lo, hi = day.SymposiumRange()
		for room := lo; room <= hi; room++ {
			rooms[room] = []PhysicalRoomWindow{
				{Name: fmt.Sprintf("U-%d", 200+room), OpensAt: hm(8, 30), ClosesAt: hm(19, 50), Capacity: 60, IsSymposiumRoom: true},
			}
		}

		table[day] = rooms
	}

	// Day-one exceptions: rooms 19-21 sit in the B wing, which hosts other
	// faculty activity in the early morning and changes rooms at noon.
	table[DayOne][19] = []PhysicalRoomWindow{
		{Name: "B-310", OpensAt: hm(10, 20), ClosesAt: hm(12, 0), Capacity: 25},
		{Name: "B-311", OpensAt: hm(12, 10), ClosesAt: hm(13, 50), Capacity: 25},
	}
	table[DayOne][20] = []PhysicalRoomWindow{
		{Name: "B-312", OpensAt: hm(10, 20), ClosesAt: hm(13, 50), Capacity: 25},
		{Name: "B-312", OpensAt: hm(15, 0), ClosesAt: hm(19, 50), Capacity: 25},
	}
	table[DayOne][21] = []PhysicalRoomWindow{
		{Name: "B-315", OpensAt: hm(15, 0), ClosesAt: hm(19, 50), Capacity: 25},
	}

	return table
}

// GetWindows returns the physical-room windows for (day, room). Unknown
// day or room yields an empty slice, which callers must treat as "never
// available".
func GetWindows(day Day, room int) []PhysicalRoomWindow {
	rooms, ok := roomTable[day]
	if !ok {
		return nil
	}
	return rooms[room]
}

// RoomMap returns the full window table for one day, keyed by virtual
// room number. The dashboard renders this directly.
func RoomMap(day Day) map[int][]PhysicalRoomWindow {
	out := make(map[int][]PhysicalRoomWindow, len(roomTable[day]))
	for room, windows := range roomTable[day] {
		out[room] = append([]PhysicalRoomWindow(nil), windows...)
	}
	return out
}

// ValidateRoomTable checks that the IsSymposiumRoom flags in the window
// table agree with the per-day range constants. The ranges are canonical;
// a drifting table is a configuration bug and should fail loudly.
func ValidateRoomTable() error {
	for _, day := range Days() {
		for room, windows := range roomTable[day] {
			want := IsSymposiumRoom(day, room)
			for _, w := range windows {
				if w.IsSymposiumRoom != want {
					return fmt.Errorf("room table: %s room %d window %s: symposium flag %v, range says %v",
						day.Label(), room, w.Name, w.IsSymposiumRoom, want)
				}
			}
		}
	}
	return nil
}

package schedule

import "fmt"

// Occupancy is a point-in-time count of slot usage. The proposer mutates
// its own copy as it accepts candidates so that one batch of proposals
// never double-books a slot; consistency with concurrent external writes
// is the caller's problem (wrap the read-decide-write in a transaction).
type Occupancy struct {
	Ponencias map[SlotKey]int
	Simposios map[SlotKey]bool
}

// SnapshotOccupancy counts published, fully scheduled events per slot.
func SnapshotOccupancy(events []Event) Occupancy {
	occ := Occupancy{
		Ponencias: make(map[SlotKey]int),
		Simposios: make(map[SlotKey]bool),
	}
	for _, e := range events {
		if e.Status != StatusPublished || !e.FullyScheduled() {
			continue
		}
		switch e.Type {
		case TypePonencia:
			occ.Ponencias[e.Slot()]++
		case TypeSimposio:
			occ.Simposios[e.Slot()] = true
		}
	}
	return occ
}

// FindAvailableRoom searches the day's regular range in ascending order
// for the first room whose slot is simposio-free, has mesa capacity left
// and physically operates during the block. First fit, not best fit: the
// goal is resolving conflicts, not optimal packing.
func FindAvailableRoom(day Day, block string, occ Occupancy) (int, bool) {
	lo, hi := day.RegularRange()
	for room := lo; room <= hi; room++ {
		key := SlotKey{Day: day, Room: room, TimeBlock: block}
		if occ.Simposios[key] {
			continue
		}
		if occ.Ponencias[key] >= MesaCapacity {
			continue
		}
		if !IsRoomAvailable(day, room, block) {
			continue
		}
		return room, true
	}
	return 0, false
}

// MovementProposal is a suggested single-field relocation. Applying it is
// the caller's write: UPDATE room = ToRoom WHERE id = EventID.
type MovementProposal struct {
	EventID   string   `json:"eventId"`
	FromRoom  int      `json:"fromRoom"`
	ToRoom    int      `json:"toRoom"`
	Day       Day      `json:"day"`
	DayLabel  string   `json:"dayLabel"`
	TimeBlock string   `json:"timeBlock"`
	Category  Category `json:"category"`
	Reason    string   `json:"reason"`
}

// MovementPlan is the outcome of one detection+proposal run. Unresolved
// conflicts are reported, never dropped: either no regular room could take
// the event, or the conflict (a misplaced simposio) needs a human call.
type MovementPlan struct {
	Proposals  []MovementProposal `json:"proposals"`
	Unresolved []ConflictRecord   `json:"unresolved"`
}

// ProposeMovements runs conflict detection over the snapshot and proposes
// a relocation for every conflicting ponencia. The local occupancy copy is
// updated after each accepted candidate, so proposals within the batch are
// mutually consistent.
func ProposeMovements(events []Event) (MovementPlan, error) {
	conflicts, err := DetectConflicts(events)
	if err != nil {
		return MovementPlan{}, err
	}

	occ := SnapshotOccupancy(events)
	var plan MovementPlan

	for _, c := range conflicts {
		if c.Category == CategorySymposiumMisplaced {
			// Relocating a simposio changes which range is searched;
			// left to the organizers.
			plan.Unresolved = append(plan.Unresolved, c)
			continue
		}

		room, ok := FindAvailableRoom(c.Day, c.TimeBlock, occ)
		if !ok {
			plan.Unresolved = append(plan.Unresolved, c)
			continue
		}

		from := SlotKey{Day: c.Day, Room: c.Room, TimeBlock: c.TimeBlock}
		to := SlotKey{Day: c.Day, Room: room, TimeBlock: c.TimeBlock}
		if occ.Ponencias[from] > 0 {
			occ.Ponencias[from]--
		}
		occ.Ponencias[to]++

		plan.Proposals = append(plan.Proposals, MovementProposal{
			EventID:   c.EventID,
			FromRoom:  c.Room,
			ToRoom:    room,
			Day:       c.Day,
			DayLabel:  c.Day.Label(),
			TimeBlock: c.TimeBlock,
			Category:  c.Category,
			Reason:    fmt.Sprintf("%s; mover a la sala %d", c.Reason, room),
		})
	}

	return plan, nil
}

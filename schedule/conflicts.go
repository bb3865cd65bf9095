package schedule

import "fmt"

// Category classifies a detected scheduling conflict.
type Category string

const (
	// CategoryMixedWithSimposio: a ponencia shares its slot with a simposio.
	CategoryMixedWithSimposio Category = "mixed_with_simposio"
	// CategoryTimeMismatch: no physical-room window hosts the block.
	CategoryTimeMismatch Category = "time_mismatch"
	// CategoryReservedRoom: a ponencia sits in a symposium-reserved room.
	CategoryReservedRoom Category = "reserved_room"
	// CategoryOverload: more ponencias in one slot than the mesa holds.
	CategoryOverload Category = "overload"
	// CategorySymposiumMisplaced: a simposio outside the reserved range.
	CategorySymposiumMisplaced Category = "symposium_misplaced"
)

// ConflictRecord describes one nonconforming event. Records are rebuilt
// fresh on every detection pass and never persisted.
type ConflictRecord struct {
	EventID   string   `json:"eventId"`
	Category  Category `json:"category"`
	Day       Day      `json:"day"`
	DayLabel  string   `json:"dayLabel"`
	Room      int      `json:"room"`
	TimeBlock string   `json:"timeBlock"`
	Reason    string   `json:"reason"`
}

func newConflict(e Event, cat Category, reason string) ConflictRecord {
	return ConflictRecord{
		EventID:   e.ID,
		Category:  cat,
		Day:       e.Day,
		DayLabel:  e.Day.Label(),
		Room:      e.Room,
		TimeBlock: e.TimeBlock,
		Reason:    reason,
	}
}

// DetectConflicts scans the event snapshot and classifies every published,
// fully scheduled ponencia into at most one conflict category; misplaced
// simposios are reported independently. Passes run in a fixed order and
// the first matching category wins. The function is pure: it mutates
// nothing and returns identical results for identical input.
//
// An unparseable time block on an analyzed event is a contract violation
// and aborts detection with an error.
func DetectConflicts(events []Event) ([]ConflictRecord, error) {
	var ponencias, simposios []Event
	for _, e := range events {
		if e.Status != StatusPublished || !e.FullyScheduled() {
			continue
		}
		switch e.Type {
		case TypePonencia:
			ponencias = append(ponencias, e)
		case TypeSimposio:
			simposios = append(simposios, e)
		}
	}

	for _, e := range append(append([]Event(nil), ponencias...), simposios...) {
		if _, _, err := ParseTimeBlock(e.TimeBlock); err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
	}

	simposioSlots := make(map[SlotKey]bool)
	for _, s := range simposios {
		simposioSlots[s.Slot()] = true
	}

	var conflicts []ConflictRecord
	processed := make(map[string]bool)

	// Pass 1: ponencias sharing a slot with a simposio.
	for _, e := range ponencias {
		if simposioSlots[e.Slot()] {
			conflicts = append(conflicts, newConflict(e, CategoryMixedWithSimposio,
				fmt.Sprintf("comparte la sala %d con un simposio en el bloque %s", e.Room, e.TimeBlock)))
			processed[e.ID] = true
		}
	}

	// Pass 2: block does not fit any physical-room window.
	for _, e := range ponencias {
		if processed[e.ID] {
			continue
		}
		if !IsRoomAvailable(e.Day, e.Room, e.TimeBlock) {
			conflicts = append(conflicts, newConflict(e, CategoryTimeMismatch,
				fmt.Sprintf("la sala %d no opera en el bloque %s (%s)", e.Room, e.TimeBlock, e.Day.Label())))
			processed[e.ID] = true
		}
	}

	// Pass 3: ponencia parked in a symposium-reserved room. Reserved rooms
	// are closed to ponencias outright, so every occupant is flagged, not
	// just those past the capacity-1 cutoff.
	for _, e := range ponencias {
		if processed[e.ID] {
			continue
		}
		if IsSymposiumRoom(e.Day, e.Room) {
			conflicts = append(conflicts, newConflict(e, CategoryReservedRoom,
				fmt.Sprintf("la sala %d está reservada para simposios el %s", e.Room, e.Day.Label())))
			processed[e.ID] = true
		}
	}

	// Pass 4: overloaded mesas. The first N occupants keep their slot in
	// original order; only the remainder is flagged.
	groups := make(map[SlotKey][]Event)
	var order []SlotKey
	for _, e := range ponencias {
		if processed[e.ID] {
			continue
		}
		key := e.Slot()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}
	for _, key := range order {
		group := groups[key]
		capacity := MaxCapacity(key.Day, key.Room)
		if len(group) <= capacity {
			continue
		}
		for _, e := range group[capacity:] {
			conflicts = append(conflicts, newConflict(e, CategoryOverload,
				fmt.Sprintf("la mesa de la sala %d en %s ya tiene %d ponencias (máximo %d)",
					key.Room, key.TimeBlock, capacity, capacity)))
			processed[e.ID] = true
		}
	}

	// Simposios outside the reserved range; disjoint from passes 1-4.
	for _, s := range simposios {
		if !IsSymposiumRoom(s.Day, s.Room) {
			lo, hi := s.Day.SymposiumRange()
			conflicts = append(conflicts, newConflict(s, CategorySymposiumMisplaced,
				fmt.Sprintf("el simposio está en la sala %d; el %s los simposios van en %d-%d",
					s.Room, s.Day.Label(), lo, hi)))
		}
	}

	return conflicts, nil
}

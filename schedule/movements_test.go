package schedule

import (
	"fmt"
	"testing"
)

func TestFindAvailableRoomFirstFit(t *testing.T) {
	occ := SnapshotOccupancy(nil)
	room, ok := FindAvailableRoom(DayTwo, "08:30 - 10:10", occ)
	if !ok || room != 1 {
		t.Fatalf("empty congress: want room 1, got %d (ok=%v)", room, ok)
	}

	// Fill room 1, park a simposio in room 2: first fit lands on 3.
	block := "08:30 - 10:10"
	occ.Ponencias[SlotKey{DayTwo, 1, block}] = MesaCapacity
	occ.Simposios[SlotKey{DayTwo, 2, block}] = true
	room, ok = FindAvailableRoom(DayTwo, block, occ)
	if !ok || room != 3 {
		t.Fatalf("want room 3, got %d (ok=%v)", room, ok)
	}
}

func TestFindAvailableRoomRespectsWindows(t *testing.T) {
	// Day-one rooms 19 and 21 do not open at 08:30; the search must skip
	// them even when they are empty.
	occ := SnapshotOccupancy(nil)
	block := "08:30 - 10:10"
	for room := 1; room <= 18; room++ {
		occ.Ponencias[SlotKey{DayOne, room, block}] = MesaCapacity
	}
	occ.Ponencias[SlotKey{DayOne, 20, block}] = MesaCapacity
	if room, ok := FindAvailableRoom(DayOne, block, occ); ok {
		t.Fatalf("no regular room operates with capacity at 08:30, got %d", room)
	}
}

func TestProposeMovementsTargetsRegularRangeOnly(t *testing.T) {
	events := []Event{
		ponencia("P1", DayOne, 22, "08:30 - 10:10"),
		ponencia("P2", DayTwo, 16, "08:30 - 10:10"),
	}
	plan, err := ProposeMovements(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Proposals) != 2 {
		t.Fatalf("want 2 proposals, got %d (unresolved: %+v)", len(plan.Proposals), plan.Unresolved)
	}
	for _, p := range plan.Proposals {
		lo, hi := p.Day.RegularRange()
		if p.ToRoom < lo || p.ToRoom > hi {
			t.Errorf("proposal for %s targets room %d, outside regular range %d-%d", p.EventID, p.ToRoom, lo, hi)
		}
	}
}

func TestProposeMovementsBatchConsistency(t *testing.T) {
	// 14 overflow ponencias competing for relocation: accepted proposals
	// must not jointly overfill any target slot.
	block := "08:30 - 10:10"
	var events []Event
	for i := 1; i <= 20; i++ {
		events = append(events, ponencia(fmt.Sprintf("P%d", i), DayTwo, 5, block))
	}
	plan, err := ProposeMovements(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Proposals) != 14 {
		t.Fatalf("want 14 proposals for 14 overflow events, got %d", len(plan.Proposals))
	}
	perRoom := make(map[int]int)
	for _, p := range plan.Proposals {
		if p.ToRoom == 5 {
			t.Errorf("%s proposed back into the overloaded room", p.EventID)
		}
		perRoom[p.ToRoom]++
	}
	for room, n := range perRoom {
		if n > MesaCapacity {
			t.Errorf("room %d receives %d events in one batch, exceeds mesa capacity", room, n)
		}
	}
}

func TestProposeMovementsReportsUnresolved(t *testing.T) {
	// Saturate the whole day-two regular range for one block, then add an
	// overflow ponencia: nothing can take it.
	block := "08:30 - 10:10"
	var events []Event
	id := 0
	lo, hi := DayTwo.RegularRange()
	for room := lo; room <= hi; room++ {
		for i := 0; i < MesaCapacity; i++ {
			id++
			events = append(events, ponencia(fmt.Sprintf("P%d", id), DayTwo, room, block))
		}
	}
	events = append(events, ponencia("PX", DayTwo, 5, block))
	plan, err := ProposeMovements(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Proposals) != 0 {
		t.Fatalf("no room has capacity, yet got proposals: %+v", plan.Proposals)
	}
	if len(plan.Unresolved) != 1 || plan.Unresolved[0].EventID != "PX" {
		t.Fatalf("want PX unresolved, got %+v", plan.Unresolved)
	}
}

func TestProposeMovementsLeavesSimposiosToHumans(t *testing.T) {
	events := []Event{simposio("S1", DayOne, 3, "08:30 - 10:10")}
	plan, err := ProposeMovements(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Proposals) != 0 {
		t.Fatalf("misplaced simposios must not get proposals, got %+v", plan.Proposals)
	}
	if len(plan.Unresolved) != 1 || plan.Unresolved[0].Category != CategorySymposiumMisplaced {
		t.Fatalf("want one unresolved symposium_misplaced record, got %+v", plan.Unresolved)
	}
}

func TestSnapshotOccupancyCountsPublishedScheduledOnly(t *testing.T) {
	events := []Event{
		ponencia("P1", DayOne, 1, "08:30 - 10:10"),
		ponencia("P2", DayOne, 1, "08:30 - 10:10"),
		{ID: "D1", Day: DayOne, Room: 1, TimeBlock: "08:30 - 10:10", Type: TypePonencia, Status: StatusDraft},
		{ID: "U1", Type: TypePonencia, Status: StatusPublished},
		simposio("S1", DayOne, 25, "08:30 - 10:10"),
	}
	occ := SnapshotOccupancy(events)
	if got := occ.Ponencias[SlotKey{DayOne, 1, "08:30 - 10:10"}]; got != 2 {
		t.Errorf("want 2 counted ponencias, got %d", got)
	}
	if !occ.Simposios[SlotKey{DayOne, 25, "08:30 - 10:10"}] {
		t.Error("published simposio slot not recorded")
	}
}

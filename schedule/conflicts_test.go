package schedule

import (
	"fmt"
	"reflect"
	"testing"
)

func ponencia(id string, day Day, room int, block string) Event {
	return Event{ID: id, Day: day, Room: room, TimeBlock: block, Type: TypePonencia, Status: StatusPublished}
}

func simposio(id string, day Day, room int, block string) Event {
	return Event{ID: id, Day: day, Room: room, TimeBlock: block, Type: TypeSimposio, Status: StatusPublished}
}

func byID(records []ConflictRecord) map[string]ConflictRecord {
	out := make(map[string]ConflictRecord, len(records))
	for _, r := range records {
		out[r.EventID] = r
	}
	return out
}

func TestDetectConflictsSkipsUnanalyzableEvents(t *testing.T) {
	events := []Event{
		{ID: "draft", Day: DayOne, Room: 1, TimeBlock: "08:30 - 10:10", Type: TypePonencia, Status: StatusDraft},
		{ID: "partial", Day: DayOne, Type: TypePonencia, Status: StatusPublished},
		{ID: "taller", Day: DayOne, Room: 1, TimeBlock: "08:30 - 10:10", Type: "taller", Status: StatusPublished},
	}
	conflicts, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Fatalf("draft, partially scheduled and other-type events must be skipped, got %+v", conflicts)
	}
}

func TestDetectConflictsMixedWithSimposio(t *testing.T) {
	events := []Event{
		simposio("S1", DayOne, 25, "08:30 - 10:10"),
		ponencia("P1", DayOne, 25, "08:30 - 10:10"),
		ponencia("P2", DayOne, 25, "08:30 - 10:10"),
		ponencia("P3", DayOne, 25, "10:20 - 12:00"), // different block, no mix
	}
	conflicts, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := byID(conflicts)
	for _, id := range []string{"P1", "P2"} {
		if got[id].Category != CategoryMixedWithSimposio {
			t.Errorf("%s: got %q, want %q", id, got[id].Category, CategoryMixedWithSimposio)
		}
	}
	if r, ok := got["S1"]; ok && r.Category == CategoryMixedWithSimposio {
		t.Error("the simposio itself must never be flagged as mixed")
	}
	if got["P3"].Category == CategoryMixedWithSimposio {
		t.Error("P3 shares the room but not the block")
	}
}

func TestDetectConflictsTimeMismatch(t *testing.T) {
	events := []Event{
		ponencia("P1", DayOne, 19, "08:30 - 10:10"), // room 19 opens 10:20
		ponencia("P2", DayOne, 19, "11:00 - 12:30"), // straddles the window change
		ponencia("P3", DayOne, 19, "10:20 - 12:00"), // fits
	}
	conflicts, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := byID(conflicts)
	for _, id := range []string{"P1", "P2"} {
		if got[id].Category != CategoryTimeMismatch {
			t.Errorf("%s: got %q, want %q", id, got[id].Category, CategoryTimeMismatch)
		}
	}
	if _, ok := got["P3"]; ok {
		t.Error("P3 fits its window and must not be flagged")
	}
}

func TestDetectConflictsOverloadKeepsFirstN(t *testing.T) {
	var events []Event
	for i := 1; i <= 8; i++ {
		events = append(events, ponencia(fmt.Sprintf("P%d", i), DayTwo, 5, "08:30 - 10:10"))
	}
	conflicts, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := byID(conflicts)
	if len(conflicts) != 2 {
		t.Fatalf("want exactly 2 overload records, got %d", len(conflicts))
	}
	for _, id := range []string{"P7", "P8"} {
		if got[id].Category != CategoryOverload {
			t.Errorf("%s: got %q, want %q", id, got[id].Category, CategoryOverload)
		}
	}
	for i := 1; i <= 6; i++ {
		if _, ok := got[fmt.Sprintf("P%d", i)]; ok {
			t.Errorf("P%d is within capacity and must keep its slot", i)
		}
	}
}

func TestDetectConflictsReservedRoom(t *testing.T) {
	// A ponencia in a symposium-only room with no simposio present is not
	// "mixed"; it gets its own category.
	events := []Event{
		ponencia("P1", DayOne, 22, "08:30 - 10:10"),
	}
	conflicts, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("want 1 record, got %d", len(conflicts))
	}
	r := conflicts[0]
	if r.Category == CategoryMixedWithSimposio {
		t.Error("no simposio present; must not be classified as mixed")
	}
	if r.Category != CategoryReservedRoom {
		t.Errorf("got %q, want %q", r.Category, CategoryReservedRoom)
	}
}

func TestDetectConflictsSymposiumMisplaced(t *testing.T) {
	events := []Event{
		simposio("S1", DayOne, 10, "08:30 - 10:10"), // regular range on day one
		simposio("S2", DayTwo, 20, "08:30 - 10:10"), // inside day-two reserved range
		simposio("S3", DayTwo, 27, "08:30 - 10:10"), // 27 is regular on day two
	}
	conflicts, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := byID(conflicts)
	for _, id := range []string{"S1", "S3"} {
		if got[id].Category != CategorySymposiumMisplaced {
			t.Errorf("%s: got %q, want %q", id, got[id].Category, CategorySymposiumMisplaced)
		}
	}
	if _, ok := got["S2"]; ok {
		t.Error("S2 is correctly placed and must not be flagged")
	}
}

func TestDetectConflictsAtMostOneCategoryPerPonencia(t *testing.T) {
	// Slot mixes a simposio with 8 ponencias in a room that is also
	// symposium-reserved: every ponencia must carry exactly one record.
	events := []Event{simposio("S1", DayOne, 25, "08:30 - 10:10")}
	for i := 1; i <= 8; i++ {
		events = append(events, ponencia(fmt.Sprintf("P%d", i), DayOne, 25, "08:30 - 10:10"))
	}
	conflicts, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]int)
	for _, r := range conflicts {
		seen[r.EventID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("%s flagged %d times, want exactly once", id, n)
		}
	}
	for i := 1; i <= 8; i++ {
		id := fmt.Sprintf("P%d", i)
		if seen[id] != 1 {
			t.Errorf("%s: want one record, got %d", id, seen[id])
		}
		if byID(conflicts)[id].Category != CategoryMixedWithSimposio {
			t.Errorf("%s: mixed-with-simposio wins over later passes", id)
		}
	}
}

func TestDetectConflictsIdempotent(t *testing.T) {
	events := []Event{
		simposio("S1", DayOne, 25, "08:30 - 10:10"),
		ponencia("P1", DayOne, 25, "08:30 - 10:10"),
		ponencia("P2", DayOne, 19, "08:30 - 10:10"),
		ponencia("P3", DayTwo, 16, "08:30 - 10:10"),
	}
	first, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := DetectConflicts(events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("detection is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDetectConflictsRejectsMalformedBlock(t *testing.T) {
	events := []Event{ponencia("P1", DayOne, 1, "garbage")}
	if _, err := DetectConflicts(events); err == nil {
		t.Fatal("expected a fail-fast error for an unparseable block")
	}
}

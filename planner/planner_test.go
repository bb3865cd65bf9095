package planner

import (
	"testing"

	"congreso/models"
	"congreso/schedule"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestToCoreEvents(t *testing.T) {
	stored := []models.Event{
		{
			EventID:            "e1",
			EventType:          "ponencia",
			Status:             "publicado",
			Room:               intPtr(7),
			ScheduledDay:       strPtr("martes 14 de octubre"),
			ScheduledTimeBlock: strPtr("08:30 - 10:10"),
		},
		{
			EventID:   "e2",
			EventType: "simposio",
			Status:    "publicado",
			// unscheduled
		},
		{
			EventID:      "e3",
			EventType:    "ponencia",
			Status:       "publicado",
			Room:         intPtr(3),
			ScheduledDay: strPtr("lunes 13 de octubre"), // unknown label
		},
	}

	core := toCoreEvents(stored)
	if len(core) != 3 {
		t.Fatalf("want 3 mapped events, got %d", len(core))
	}

	if core[0].Day != schedule.DayOne || core[0].Room != 7 || core[0].TimeBlock != "08:30 - 10:10" {
		t.Errorf("e1 mapped wrong: %+v", core[0])
	}
	if !core[0].FullyScheduled() {
		t.Error("e1 should be fully scheduled")
	}
	if core[1].FullyScheduled() {
		t.Error("e2 has no assignment and must not read as scheduled")
	}
	if core[2].Day.Valid() {
		t.Error("unknown day label must map to an unset day")
	}
	if core[2].FullyScheduled() {
		t.Error("e3 must surface as incomplete, not scheduled")
	}
}

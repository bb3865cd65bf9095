package schedule

import "testing"

func TestParseTimeBlock(t *testing.T) {
	start, end, err := ParseTimeBlock("08:30 - 10:10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != 8*60+30 || end != 10*60+10 {
		t.Fatalf("got start=%d end=%d", start, end)
	}

	// duration is derived, never assumed
	start, end, err = ParseTimeBlock("09:00 - 09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end-start != 30 {
		t.Fatalf("expected 30-minute block, got %d", end-start)
	}

	for _, bad := range []string{"", "08:30", "08:30-10:10", "8h30 - 10h10", "10:10 - 08:30", "25:00 - 26:40"} {
		if _, _, err := ParseTimeBlock(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestIsRoomAvailableContainment(t *testing.T) {
	// Day-one room 19 has split windows 10:20-12:00 and 12:10-13:50.
	if !IsRoomAvailable(DayOne, 19, "10:20 - 12:00") {
		t.Error("block filling the morning window should be available")
	}
	if !IsRoomAvailable(DayOne, 19, "12:10 - 13:50") {
		t.Error("block filling the afternoon window should be available")
	}
	if IsRoomAvailable(DayOne, 19, "11:00 - 12:30") {
		t.Error("block straddling the window change must not be available")
	}
	if IsRoomAvailable(DayOne, 19, "08:30 - 10:10") {
		t.Error("block before the first window must not be available")
	}
}

func TestIsRoomAvailableUnknownDayOrRoom(t *testing.T) {
	if IsRoomAvailable(Day(9), 1, "08:30 - 10:10") {
		t.Error("unknown day must read as unavailable")
	}
	if IsRoomAvailable(DayOne, 99, "08:30 - 10:10") {
		t.Error("unknown room must read as unavailable")
	}
	if IsRoomAvailable(DayOne, 1, "not a block") {
		t.Error("unparseable block must read as unavailable")
	}
}

func TestIsRoomAvailableMiddayGap(t *testing.T) {
	// Regular rooms close between 13:50 and 15:00.
	if !IsRoomAvailable(DayTwo, 3, "08:30 - 10:10") {
		t.Error("morning block should be available")
	}
	if IsRoomAvailable(DayTwo, 3, "13:30 - 15:10") {
		t.Error("block inside the midday gap must not be available")
	}
	if !IsRoomAvailable(DayTwo, 3, "15:00 - 16:40") {
		t.Error("afternoon block should be available")
	}
}

func TestValidateRoomTable(t *testing.T) {
	if err := ValidateRoomTable(); err != nil {
		t.Fatalf("room table inconsistent with range constants: %v", err)
	}
}

func TestGetWindowsUnknown(t *testing.T) {
	if got := GetWindows(Day(7), 1); len(got) != 0 {
		t.Fatalf("expected no windows, got %d", len(got))
	}
	if got := GetWindows(DayTwo, 30); len(got) != 0 {
		t.Fatalf("day-two room 30 is outside both ranges, got %d windows", len(got))
	}
}

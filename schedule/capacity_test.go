package schedule

import "testing"

func TestMaxCapacityRangeBoundary(t *testing.T) {
	cases := []struct {
		day  Day
		room int
		want int
	}{
		{DayOne, 1, 6},
		{DayOne, 21, 6},
		{DayOne, 22, 1},
		{DayOne, 32, 1},
		{DayTwo, 15, 6},
		{DayTwo, 16, 1},
		{DayTwo, 26, 1},
		{DayTwo, 27, 6},
	}
	for _, c := range cases {
		if got := MaxCapacity(c.day, c.room); got != c.want {
			t.Errorf("MaxCapacity(%s, %d) = %d, want %d", c.day.Label(), c.room, got, c.want)
		}
	}
}

func TestMaxCapacityFlipsExactlyOnce(t *testing.T) {
	for _, day := range Days() {
		lo, hi := day.SymposiumRange()
		flips := 0
		prev := MaxCapacity(day, 1)
		for room := 2; room <= hi; room++ {
			cur := MaxCapacity(day, room)
			if cur != prev {
				flips++
			}
			prev = cur
		}
		if flips != 1 {
			t.Errorf("%s: capacity flipped %d times across rooms 1-%d, want 1 (range %d-%d)",
				day.Label(), flips, hi, lo, hi)
		}
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	for _, day := range Days() {
		got, ok := ParseDay(day.Label())
		if !ok || got != day {
			t.Errorf("ParseDay(%q) = %v, %v", day.Label(), got, ok)
		}
	}
	if _, ok := ParseDay("lunes 13 de octubre"); ok {
		t.Error("unknown label must not parse")
	}
}

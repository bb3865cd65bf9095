package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeBlock parses a block label of the form "HH:MM - HH:MM" into
// start and end offsets in minutes since midnight. Both halves are parsed
// independently; the observed data uses 100-minute blocks but nothing here
// assumes that. Malformed input is a caller error and is rejected outright.
func ParseTimeBlock(block string) (start, end int, err error) {
	parts := strings.Split(block, " - ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time block %q: want \"HH:MM - HH:MM\"", block)
	}
	start, err = parseClock(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time block %q: %w", block, err)
	}
	end, err = parseClock(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time block %q: %w", block, err)
	}
	if end <= start {
		return 0, 0, fmt.Errorf("invalid time block %q: end not after start", block)
	}
	return start, end, nil
}

func parseClock(s string) (int, error) {
	hm := strings.Split(strings.TrimSpace(s), ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("bad clock value %q", s)
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad minute in %q", s)
	}
	return h*60 + m, nil
}

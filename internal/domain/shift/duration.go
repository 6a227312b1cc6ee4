package shift

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeDuration returns the elapsed hours between two "HH:MM" clock times,
// rounded half-up to 2 decimals. An end before the start is treated as
// crossing midnight. Returns ok=false on malformed input so callers can leave
// the duration unset instead of failing the save.
func ComputeDuration(start, end string) (float64, bool) {
	startMins, ok := parseClock(start)
	if !ok {
		return 0, false
	}
	endMins, ok := parseClock(end)
	if !ok {
		return 0, false
	}

	if endMins < startMins {
		endMins += 24 * 60
	}

	hours := decimal.NewFromInt(int64(endMins - startMins)).
		Div(decimal.NewFromInt(60)).
		Round(2)
	f, _ := hours.Float64()
	return f, true
}

func parseClock(v string) (int, bool) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

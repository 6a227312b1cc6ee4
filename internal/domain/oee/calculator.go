package oee

import (
	"math"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
)

// DefaultIdealCycleTimeSecs is assumed when no product-machine link supplies
// an ideal cycle time.
const DefaultIdealCycleTimeSecs = 10.0

// Window is the time span metrics are computed over. HoursPerDay bounds the
// scheduled production time per day so a plant that runs one 8-hour shift is
// not measured against 24 hours of theoretical capacity.
type Window struct {
	Start       time.Time
	End         time.Time
	HoursPerDay float64
	Days        int
}

// NewWindow builds a window ending at now and spanning the given number of
// days. Out-of-range arguments fall back to a single 24-hour day.
func NewWindow(now time.Time, days int, hoursPerDay float64) Window {
	if days <= 0 {
		days = 1
	}
	if hoursPerDay <= 0 || hoursPerDay > 24 || math.IsNaN(hoursPerDay) {
		hoursPerDay = 24
	}
	return Window{
		Start:       now.AddDate(0, 0, -days),
		End:         now,
		HoursPerDay: hoursPerDay,
		Days:        days,
	}
}

// TheoreticalSeconds is the total scheduled production time in the window.
func (w Window) TheoreticalSeconds() float64 {
	return w.HoursPerDay * 3600 * float64(w.Days)
}

// OverlapSeconds returns how many seconds of an event starting at start and
// lasting durationSecs fall inside the window. Events entirely outside the
// window contribute 0; partial overlaps contribute only the overlapping part.
func (w Window) OverlapSeconds(start time.Time, durationSecs float64) float64 {
	if durationSecs <= 0 || math.IsNaN(durationSecs) || math.IsInf(durationSecs, 0) {
		return 0
	}
	end := start.Add(time.Duration(durationSecs * float64(time.Second)))

	lo := start
	if w.Start.After(lo) {
		lo = w.Start
	}
	hi := end
	if w.End.Before(hi) {
		hi = w.End
	}
	if !hi.After(lo) {
		return 0
	}
	return hi.Sub(lo).Seconds()
}

// Metrics holds the three OEE factors and their product, all as percentages.
// Availability and Quality are in [0,100]. Performance is floored at 0 but may
// exceed 100 (over-performance against the ideal cycle time); only the
// composite OEE is clamped to [0,100].
type Metrics struct {
	Availability float64 `json:"availability"`
	Performance  float64 `json:"performance"`
	Quality      float64 `json:"quality"`
	OEE          float64 `json:"oee"`
}

// Compute derives OEE metrics from the cycles and stoppages observed in the
// window. All factors are computed over the same window; callers must pass
// cycles and stoppages filtered to the same machine and span.
//
//   - Quality: good cycles / total cycles. 0 when there are no cycles.
//   - Availability: (theoretical - stoppage seconds clipped to the window) /
//     theoretical. 100 when theoretical time is 0; never negative.
//   - Performance: actual cycles / floor(available seconds / ideal cycle time).
func Compute(w Window, cycles []order.Cycle, stoppages []stoppage.Stoppage, idealCycleSecs float64) Metrics {
	theoretical := w.TheoreticalSeconds()

	var downSecs float64
	for _, st := range stoppages {
		downSecs += w.OverlapSeconds(st.StartedAt, st.DurationSecs)
	}
	availableSecs := theoretical - downSecs
	if availableSecs < 0 {
		availableSecs = 0
	}

	availability := 100.0
	if theoretical > 0 {
		availability = availableSecs / theoretical * 100
	}

	total := len(cycles)
	good := 0
	for _, c := range cycles {
		if !c.Defective {
			good++
		}
	}
	quality := 0.0
	if total > 0 {
		quality = float64(good) / float64(total) * 100
	}

	if idealCycleSecs <= 0 || math.IsNaN(idealCycleSecs) || math.IsInf(idealCycleSecs, 0) {
		idealCycleSecs = DefaultIdealCycleTimeSecs
	}
	performance := 0.0
	if idealCount := math.Floor(availableSecs / idealCycleSecs); idealCount > 0 {
		performance = float64(total) / idealCount * 100
	}
	if performance < 0 {
		performance = 0
	}

	oee := availability * performance * quality / 10000
	if oee < 0 {
		oee = 0
	}
	if oee > 100 {
		oee = 100
	}

	return Metrics{
		Availability: availability,
		Performance:  performance,
		Quality:      quality,
		OEE:          oee,
	}
}

package oee

import (
	"testing"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
	"github.com/stretchr/testify/require"
)

func testWindow(days int, hoursPerDay float64) Window {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return NewWindow(now, days, hoursPerDay)
}

func makeCycles(w Window, good, defective int) []order.Cycle {
	var cycles []order.Cycle
	at := w.Start.Add(time.Minute)
	for i := 0; i < good; i++ {
		cycles = append(cycles, order.Cycle{RecordedAt: at, Defective: false})
	}
	for i := 0; i < defective; i++ {
		cycles = append(cycles, order.Cycle{RecordedAt: at, Defective: true})
	}
	return cycles
}

func TestNewWindow_Normalization(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	w := NewWindow(now, 0, 0)
	require.Equal(t, 1, w.Days)
	require.Equal(t, 24.0, w.HoursPerDay)
	require.Equal(t, now.AddDate(0, 0, -1), w.Start)

	w = NewWindow(now, 7, 8)
	require.Equal(t, 7, w.Days)
	require.Equal(t, 8.0, w.HoursPerDay)
	require.Equal(t, 8.0*3600*7, w.TheoreticalSeconds())

	w = NewWindow(now, -5, 30)
	require.Equal(t, 1, w.Days)
	require.Equal(t, 24.0, w.HoursPerDay)
}

func TestCompute_NoCyclesQualityZero(t *testing.T) {
	w := testWindow(1, 24)

	m := Compute(w, nil, nil, 10)
	require.Equal(t, 0.0, m.Quality)
	require.Equal(t, 100.0, m.Availability)
	require.Equal(t, 0.0, m.OEE)
}

func TestCompute_NoStoppagesFullAvailability(t *testing.T) {
	w := testWindow(1, 24)

	m := Compute(w, makeCycles(w, 10, 0), nil, 10)
	require.Equal(t, 100.0, m.Availability)
	require.Equal(t, 100.0, m.Quality)
}

func TestCompute_QualityRatio(t *testing.T) {
	w := testWindow(1, 24)

	m := Compute(w, makeCycles(w, 3, 1), nil, 10)
	require.Equal(t, 75.0, m.Quality)
}

func TestCompute_StoppageReducesAvailability(t *testing.T) {
	w := testWindow(1, 24)
	// 6 hours down out of 24.
	stoppages := []stoppage.Stoppage{
		{StartedAt: w.Start.Add(time.Hour), DurationSecs: 6 * 3600},
	}

	m := Compute(w, makeCycles(w, 10, 0), stoppages, 10)
	require.InDelta(t, 75.0, m.Availability, 0.001)
}

func TestCompute_OversizedStoppageFloorsAvailability(t *testing.T) {
	w := testWindow(1, 24)
	// Longer than the whole window.
	stoppages := []stoppage.Stoppage{
		{StartedAt: w.Start, DurationSecs: 48 * 3600},
	}

	m := Compute(w, makeCycles(w, 10, 0), stoppages, 10)
	require.Equal(t, 0.0, m.Availability)
	require.Equal(t, 0.0, m.Performance)
	require.Equal(t, 0.0, m.OEE)
}

func TestCompute_StoppageOutsideWindowIgnored(t *testing.T) {
	w := testWindow(1, 24)
	stoppages := []stoppage.Stoppage{
		{StartedAt: w.Start.Add(-10 * time.Hour), DurationSecs: 3600},
		{StartedAt: w.End.Add(time.Hour), DurationSecs: 3600},
	}

	m := Compute(w, makeCycles(w, 10, 0), stoppages, 10)
	require.Equal(t, 100.0, m.Availability)
}

func TestCompute_StoppageHalfOverlapClipped(t *testing.T) {
	w := testWindow(1, 24)
	// Starts one hour before the window, runs two hours; one hour counts.
	stoppages := []stoppage.Stoppage{
		{StartedAt: w.Start.Add(-time.Hour), DurationSecs: 2 * 3600},
	}

	m := Compute(w, makeCycles(w, 10, 0), stoppages, 10)
	expected := (24.0*3600 - 3600) / (24.0 * 3600) * 100
	require.InDelta(t, expected, m.Availability, 0.001)
}

func TestCompute_PerformanceMayExceedHundred(t *testing.T) {
	// Tiny window: 1 hour of scheduled time split over 1 day.
	w := testWindow(1, 1)
	// Ideal count at 10s cycles is 360; record more.
	cycles := makeCycles(w, 720, 0)

	m := Compute(w, cycles, nil, 10)
	require.Greater(t, m.Performance, 100.0)
	require.LessOrEqual(t, m.OEE, 100.0)
}

func TestCompute_ZeroTheoreticalTime(t *testing.T) {
	w := Window{Start: time.Now(), End: time.Now(), HoursPerDay: 0, Days: 0}

	m := Compute(w, nil, nil, 10)
	require.Equal(t, 100.0, m.Availability)
	require.Equal(t, 0.0, m.Performance)
	require.Equal(t, 0.0, m.OEE)
}

func TestCompute_InvalidIdealCycleFallsBack(t *testing.T) {
	w := testWindow(1, 24)
	cycles := makeCycles(w, 100, 0)

	withDefault := Compute(w, cycles, nil, DefaultIdealCycleTimeSecs)
	withZero := Compute(w, cycles, nil, 0)
	withNegative := Compute(w, cycles, nil, -5)

	require.Equal(t, withDefault.Performance, withZero.Performance)
	require.Equal(t, withDefault.Performance, withNegative.Performance)
}

func TestOverlapSeconds(t *testing.T) {
	w := testWindow(1, 24)

	require.Equal(t, 0.0, w.OverlapSeconds(w.Start, -10))
	require.Equal(t, 0.0, w.OverlapSeconds(w.Start, 0))
	require.Equal(t, 3600.0, w.OverlapSeconds(w.Start, 3600))
	require.Equal(t, 1800.0, w.OverlapSeconds(w.End.Add(-30*time.Minute), 3600))
}

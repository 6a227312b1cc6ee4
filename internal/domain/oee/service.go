package oee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/repository"
	"github.com/shopspring/decimal"
)

// Report is the OEE view of one machine over a window.
type Report struct {
	MachineID             string    `json:"machine_id"`
	MachineName           string    `json:"machine_name"`
	WindowStart           time.Time `json:"window_start"`
	WindowEnd             time.Time `json:"window_end"`
	Availability          float64   `json:"availability"`
	Performance           float64   `json:"performance"`
	Quality               float64   `json:"quality"`
	OEE                   float64   `json:"oee"`
	CycleCount            int       `json:"cycle_count"`
	DefectiveCount        int       `json:"defective_count"`
	StoppageSecs          float64   `json:"stoppage_secs"`
	UnclassifiedStoppages int       `json:"unclassified_stoppages"`
	ScrapQty              float64   `json:"scrap_qty"`
}

// Service computes OEE reports by loading a machine's cycles, stoppages, and
// scrap for a window and feeding them through the calculator. All three data
// sets are loaded for the same window and machine.
type Service struct {
	machines  MachineSource
	orders    OrderSource
	cycles    CycleSource
	stoppages StoppageSource
	scrap     ScrapSource
	links     LinkSource
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new OEE reporting service.
func NewService(machines MachineSource, orders OrderSource, cycles CycleSource, stoppages StoppageSource, scrapSrc ScrapSource, links LinkSource, logger *slog.Logger) *Service {
	return &Service{
		machines:  machines,
		orders:    orders,
		cycles:    cycles,
		stoppages: stoppages,
		scrap:     scrapSrc,
		links:     links,
		logger:    logger,
		now:       time.Now,
	}
}

// MachineReport computes the OEE report for one machine over the trailing
// window of the given number of days.
func (s *Service) MachineReport(ctx context.Context, tenantID, machineID string, days int, hoursPerDay float64) (*Report, error) {
	m, err := s.machines.Get(ctx, tenantID, machineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, machine.ErrMachineNotFound
		}
		return nil, fmt.Errorf("getting machine: %w", err)
	}

	w := NewWindow(s.now(), days, hoursPerDay)

	cycles, err := s.cycles.ListWindow(ctx, tenantID, machineID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("loading cycles: %w", err)
	}
	stoppages, err := s.stoppages.ListWindow(ctx, tenantID, machineID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("loading stoppages: %w", err)
	}
	scrapEntries, err := s.scrap.ListWindow(ctx, tenantID, machineID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("loading scrap: %w", err)
	}

	metrics := Compute(w, cycles, stoppages, s.idealCycleTime(ctx, tenantID, machineID))

	report := &Report{
		MachineID:    m.ID,
		MachineName:  m.Name,
		WindowStart:  w.Start,
		WindowEnd:    w.End,
		Availability: round2(metrics.Availability),
		Performance:  round2(metrics.Performance),
		Quality:      round2(metrics.Quality),
		OEE:          round2(metrics.OEE),
		CycleCount:   len(cycles),
	}
	for _, c := range cycles {
		if c.Defective {
			report.DefectiveCount++
		}
	}
	for _, st := range stoppages {
		report.StoppageSecs += w.OverlapSeconds(st.StartedAt, st.DurationSecs)
		if !st.Classified {
			report.UnclassifiedStoppages++
		}
	}
	for _, e := range scrapEntries {
		report.ScrapQty += e.Quantity
	}

	return report, nil
}

// Dashboard computes reports for all of the tenant's active machines.
func (s *Service) Dashboard(ctx context.Context, tenantID string, days int, hoursPerDay float64) ([]Report, error) {
	machines, err := s.machines.List(ctx, tenantID, true)
	if err != nil {
		return nil, fmt.Errorf("listing machines: %w", err)
	}

	reports := make([]Report, 0, len(machines))
	for _, m := range machines {
		report, err := s.MachineReport(ctx, tenantID, m.ID, days, hoursPerDay)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping machine in dashboard", "machine", m.ID, "error", err)
			}
			continue
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

// idealCycleTime resolves the ideal cycle time from the product-machine link
// of the machine's most recent order. Any miss falls back to the default.
func (s *Service) idealCycleTime(ctx context.Context, tenantID, machineID string) float64 {
	ord, err := s.orders.LatestForMachine(ctx, tenantID, machineID)
	if err != nil || ord == nil {
		return DefaultIdealCycleTimeSecs
	}
	link, err := s.links.GetLink(ctx, tenantID, ord.ProductID, ord.MachineID)
	if err != nil || link == nil || link.IdealCycleTimeSecs <= 0 {
		return DefaultIdealCycleTimeSecs
	}
	return link.IdealCycleTimeSecs
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

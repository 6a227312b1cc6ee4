package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) machineOEE(w http.ResponseWriter, r *http.Request) {
	days, hoursPerDay := oeeWindowParams(r)
	report, err := s.svc.OEE.MachineReport(r.Context(), tenant(r), chi.URLParam(r, "id"), days, hoursPerDay)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) oeeDashboard(w http.ResponseWriter, r *http.Request) {
	days, hoursPerDay := oeeWindowParams(r)
	reports, err := s.svc.OEE.Dashboard(r.Context(), tenant(r), days, hoursPerDay)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// oeeWindowParams reads the window query parameters; out-of-range values are
// normalized by the window constructor.
func oeeWindowParams(r *http.Request) (int, float64) {
	q := r.URL.Query()
	days, _ := strconv.Atoi(q.Get("days"))
	hoursPerDay, _ := strconv.ParseFloat(q.Get("hoursPerDay"), 64)
	return days, hoursPerDay
}

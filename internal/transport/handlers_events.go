package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
)

type logStoppageRequest struct {
	MachineID    string     `json:"machine_id" validate:"required"`
	OrderID      *string    `json:"order_id"`
	StartedAt    *time.Time `json:"started_at"`
	DurationSecs float64    `json:"duration_secs"`
	Reason       string     `json:"reason"`
}

type classifyStoppageRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type logScrapRequest struct {
	MachineID  string     `json:"machine_id" validate:"required"`
	OrderID    *string    `json:"order_id"`
	RecordedAt *time.Time `json:"recorded_at"`
	Quantity   float64    `json:"quantity" validate:"gt=0"`
	Severity   string     `json:"severity" validate:"omitempty,oneof=low medium high"`
	Reason     string     `json:"reason"`
}

func (s *Server) logStoppage(w http.ResponseWriter, r *http.Request) {
	var req logStoppageRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logReq := stoppage.LogRequest{
		MachineID:    req.MachineID,
		OrderID:      req.OrderID,
		DurationSecs: req.DurationSecs,
		Reason:       req.Reason,
	}
	if req.StartedAt != nil {
		logReq.StartedAt = *req.StartedAt
	}

	st, err := s.svc.Stoppages.Log(r.Context(), tenant(r), logReq)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) listStoppages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	stoppages, err := s.svc.Stoppages.List(r.Context(), tenant(r), q.Get("machine_id"), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stoppages)
}

func (s *Server) classifyStoppage(w http.ResponseWriter, r *http.Request) {
	var req classifyStoppageRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st, err := s.svc.Stoppages.Classify(r.Context(), tenant(r), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) logScrap(w http.ResponseWriter, r *http.Request) {
	var req logScrapRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logReq := scrap.LogRequest{
		MachineID: req.MachineID,
		OrderID:   req.OrderID,
		Quantity:  req.Quantity,
		Severity:  scrap.Severity(req.Severity),
		Reason:    req.Reason,
	}
	if req.RecordedAt != nil {
		logReq.RecordedAt = *req.RecordedAt
	}

	e, err := s.svc.Scrap.Log(r.Context(), tenant(r), logReq)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) listScrap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	entries, err := s.svc.Scrap.List(r.Context(), tenant(r), q.Get("machine_id"), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

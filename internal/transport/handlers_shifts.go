package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mfgpulse/oeetrack/internal/domain/shift"
)

type createShiftRequest struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type patchShiftRequest struct {
	Name      *string `json:"name"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (s *Server) createShift(w http.ResponseWriter, r *http.Request) {
	var req createShiftRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sh, err := s.svc.Shifts.Create(r.Context(), tenant(r), shift.CreateRequest{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sh)
}

func (s *Server) listShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := s.svc.Shifts.List(r.Context(), tenant(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shifts)
}

func (s *Server) getShift(w http.ResponseWriter, r *http.Request) {
	sh, err := s.svc.Shifts.Get(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sh)
}

func (s *Server) patchShift(w http.ResponseWriter, r *http.Request) {
	var req patchShiftRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sh, err := s.svc.Shifts.Patch(r.Context(), tenant(r), chi.URLParam(r, "id"), shift.PatchRequest{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sh)
}

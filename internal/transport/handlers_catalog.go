package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/domain/product"
)

type createMachineRequest struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required"`
	Location string `json:"location"`
}

type updateMachineRequest struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	Location *string `json:"location"`
	Active   *bool   `json:"active"`
}

func (s *Server) createMachine(w http.ResponseWriter, r *http.Request) {
	var req createMachineRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.svc.Machines.Create(r.Context(), tenant(r), machine.CreateRequest{
		Name:     req.Name,
		Code:     req.Code,
		Location: req.Location,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) listMachines(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	machines, err := s.svc.Machines.List(r.Context(), tenant(r), activeOnly)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, machines)
}

func (s *Server) getMachine(w http.ResponseWriter, r *http.Request) {
	m, err := s.svc.Machines.Get(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) updateMachine(w http.ResponseWriter, r *http.Request) {
	var req updateMachineRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.svc.Machines.Update(r.Context(), tenant(r), chi.URLParam(r, "id"), machine.UpdateRequest{
		Name:     req.Name,
		Code:     req.Code,
		Location: req.Location,
		Active:   req.Active,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) deleteMachine(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Machines.Delete(r.Context(), tenant(r), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createProductRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
	Unit string `json:"unit"`
}

type updateProductRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
	Unit *string `json:"unit"`
}

type linkMachineRequest struct {
	MachineID          string  `json:"machine_id" validate:"required"`
	IdealCycleTimeSecs float64 `json:"ideal_cycle_time_secs" validate:"gte=0"`
	SetupTimeSecs      float64 `json:"setup_time_secs" validate:"gte=0"`
	IdealRatePerHour   float64 `json:"ideal_rate_per_hour" validate:"gte=0"`
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.svc.Products.Create(r.Context(), tenant(r), product.CreateRequest{
		Name: req.Name,
		Code: req.Code,
		Unit: req.Unit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.svc.Products.List(r.Context(), tenant(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Products.Get(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.svc.Products.Update(r.Context(), tenant(r), chi.URLParam(r, "id"), product.UpdateRequest{
		Name: req.Name,
		Code: req.Code,
		Unit: req.Unit,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Products.Delete(r.Context(), tenant(r), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) linkProductMachine(w http.ResponseWriter, r *http.Request) {
	var req linkMachineRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	link, err := s.svc.Products.Link(r.Context(), tenant(r), chi.URLParam(r, "id"), product.LinkRequest{
		MachineID:          req.MachineID,
		IdealCycleTimeSecs: req.IdealCycleTimeSecs,
		SetupTimeSecs:      req.SetupTimeSecs,
		IdealRatePerHour:   req.IdealRatePerHour,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (s *Server) listProductMachines(w http.ResponseWriter, r *http.Request) {
	links, err := s.svc.Products.Links(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

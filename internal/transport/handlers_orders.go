package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mfgpulse/oeetrack/internal/domain/order"
)

type createOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	MachineID string `json:"machine_id" validate:"required"`
	TargetQty int64  `json:"target_qty" validate:"gt=0"`
}

type recordCycleRequest struct {
	Defective bool `json:"defective"`
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ord, err := s.svc.Orders.Create(r.Context(), tenant(r), order.CreateRequest{
		ProductID: req.ProductID,
		MachineID: req.MachineID,
		TargetQty: req.TargetQty,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ord)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	orders, err := s.svc.Orders.List(r.Context(), tenant(r), order.ListOptions{
		MachineID: q.Get("machine_id"),
		Status:    order.Status(q.Get("status")),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := s.svc.Orders.Get(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (s *Server) recordCycle(w http.ResponseWriter, r *http.Request) {
	var req recordCycleRequest
	if r.ContentLength > 0 {
		if err := decodeValid(r, s.validate, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ord, err := s.svc.Orders.RecordCycle(r.Context(), tenant(r), chi.URLParam(r, "id"), req.Defective)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (s *Server) finishOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := s.svc.Orders.Finish(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	ord, err := s.svc.Orders.Cancel(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ord)
}

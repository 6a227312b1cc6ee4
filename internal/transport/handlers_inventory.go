package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
)

type createInventoryRequest struct {
	Name       string     `json:"name" validate:"required"`
	SKU        string     `json:"sku" validate:"required"`
	CurrentQty float64    `json:"current_qty"`
	MinQty     float64    `json:"min_qty" validate:"gte=0"`
	MaxQty     *float64   `json:"max_qty"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type patchInventoryRequest struct {
	Name       *string    `json:"name"`
	SKU        *string    `json:"sku"`
	CurrentQty *float64   `json:"current_qty"`
	MinQty     *float64   `json:"min_qty"`
	MaxQty     *float64   `json:"max_qty"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Inactive   *bool      `json:"inactive"`
}

func (s *Server) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req createInventoryRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := s.svc.Inventory.Create(r.Context(), tenant(r), inventory.CreateRequest{
		Name:       req.Name,
		SKU:        req.SKU,
		CurrentQty: req.CurrentQty,
		MinQty:     req.MinQty,
		MaxQty:     req.MaxQty,
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) listInventory(w http.ResponseWriter, r *http.Request) {
	attentionOnly := r.URL.Query().Get("attention") == "true"
	items, err := s.svc.Inventory.List(r.Context(), tenant(r), attentionOnly)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) getInventoryItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.svc.Inventory.Get(r.Context(), tenant(r), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) patchInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req patchInventoryRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := s.svc.Inventory.Patch(r.Context(), tenant(r), chi.URLParam(r, "id"), inventory.PatchRequest{
		Name:       req.Name,
		SKU:        req.SKU,
		CurrentQty: req.CurrentQty,
		MinQty:     req.MinQty,
		MaxQty:     req.MaxQty,
		ExpiryDate: req.ExpiryDate,
		Inactive:   req.Inactive,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Inventory.Delete(r.Context(), tenant(r), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

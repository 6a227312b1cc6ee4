package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/product"
	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
	"github.com/mfgpulse/oeetrack/internal/domain/shift"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps domain errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, machine.ErrMachineNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, product.ErrLinkNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, stoppage.ErrStoppageNotFound),
		errors.Is(err, inventory.ErrItemNotFound),
		errors.Is(err, shift.ErrShiftNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, machine.ErrInvalidInput),
		errors.Is(err, product.ErrInvalidInput),
		errors.Is(err, order.ErrInvalidInput),
		errors.Is(err, order.ErrNoMachineLink),
		errors.Is(err, stoppage.ErrInvalidInput),
		errors.Is(err, scrap.ErrInvalidInput),
		errors.Is(err, inventory.ErrInvalidInput),
		errors.Is(err, shift.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeValid decodes a JSON body into v and runs struct validation on it.
func decodeValid(r *http.Request, validate *validator.Validate, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

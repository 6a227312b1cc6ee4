package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/domain/oee"
	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/product"
	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
	"github.com/mfgpulse/oeetrack/internal/domain/shift"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
)

// Services groups the domain services the API dispatches to.
type Services struct {
	Machines  *machine.Service
	Products  *product.Service
	Orders    *order.Service
	Stoppages *stoppage.Service
	Scrap     *scrap.Service
	Inventory *inventory.Service
	Shifts    *shift.Service
	OEE       *oee.Service
}

// Server wires HTTP handlers.
type Server struct {
	svc      Services
	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer creates the API router with auth and metrics middleware.
// /health and /metrics stay outside the authenticated group.
func NewServer(svc Services, authMiddleware func(http.Handler) http.Handler, metrics *Metrics, logger *slog.Logger) *chi.Mux {
	srv := &Server{
		svc:      svc,
		validate: validator.New(),
		logger:   logger,
	}

	r := chi.NewRouter()
	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	r.Get("/health", srv.handleHealth)

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Route("/machines", func(r chi.Router) {
			r.Post("/", srv.createMachine)
			r.Get("/", srv.listMachines)
			r.Get("/{id}", srv.getMachine)
			r.Put("/{id}", srv.updateMachine)
			r.Delete("/{id}", srv.deleteMachine)
			r.Get("/{id}/oee", srv.machineOEE)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", srv.createProduct)
			r.Get("/", srv.listProducts)
			r.Get("/{id}", srv.getProduct)
			r.Put("/{id}", srv.updateProduct)
			r.Delete("/{id}", srv.deleteProduct)
			r.Post("/{id}/machines", srv.linkProductMachine)
			r.Get("/{id}/machines", srv.listProductMachines)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", srv.createOrder)
			r.Get("/", srv.listOrders)
			r.Get("/{id}", srv.getOrder)
			r.Post("/{id}/cycles", srv.recordCycle)
			r.Post("/{id}/finish", srv.finishOrder)
			r.Post("/{id}/cancel", srv.cancelOrder)
		})

		r.Route("/stoppages", func(r chi.Router) {
			r.Post("/", srv.logStoppage)
			r.Get("/", srv.listStoppages)
			r.Put("/{id}/classify", srv.classifyStoppage)
		})

		r.Route("/scrap", func(r chi.Router) {
			r.Post("/", srv.logScrap)
			r.Get("/", srv.listScrap)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", srv.createInventoryItem)
			r.Get("/", srv.listInventory)
			r.Get("/{id}", srv.getInventoryItem)
			r.Patch("/{id}", srv.patchInventoryItem)
			r.Delete("/{id}", srv.deleteInventoryItem)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", srv.createShift)
			r.Get("/", srv.listShifts)
			r.Get("/{id}", srv.getShift)
			r.Patch("/{id}", srv.patchShift)
		})

		r.Get("/oee/dashboard", srv.oeeDashboard)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// tenant pulls the tenant ID resolved by the auth middleware.
func tenant(r *http.Request) string {
	tenantID, _ := TenantFromContext(r.Context())
	return tenantID
}

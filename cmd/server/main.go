package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mfgpulse/oeetrack/internal/config"
	"github.com/mfgpulse/oeetrack/internal/domain/inventory"
	"github.com/mfgpulse/oeetrack/internal/domain/machine"
	"github.com/mfgpulse/oeetrack/internal/domain/oee"
	"github.com/mfgpulse/oeetrack/internal/domain/order"
	"github.com/mfgpulse/oeetrack/internal/domain/product"
	"github.com/mfgpulse/oeetrack/internal/domain/scrap"
	"github.com/mfgpulse/oeetrack/internal/domain/sequence"
	"github.com/mfgpulse/oeetrack/internal/domain/shift"
	"github.com/mfgpulse/oeetrack/internal/domain/stoppage"
	"github.com/mfgpulse/oeetrack/internal/sqlite"
	"github.com/mfgpulse/oeetrack/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	machineRepo := sqlite.NewMachineRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	cycleRepo := sqlite.NewCycleRepository(db)
	stoppageRepo := sqlite.NewStoppageRepository(db)
	scrapRepo := sqlite.NewScrapRepository(db)
	inventoryRepo := sqlite.NewInventoryRepository(db)
	shiftRepo := sqlite.NewShiftRepository(db)
	counterRepo := sqlite.NewCounterRepository(db)

	sequenceSvc := sequence.NewService(counterRepo, orderRepo, logger)
	machineSvc := machine.NewService(machineRepo, logger)
	productSvc := product.NewService(productRepo, logger)
	orderSvc := order.NewService(orderRepo, cycleRepo, sequenceSvc, productRepo, logger)
	stoppageSvc := stoppage.NewService(stoppageRepo, logger)
	scrapSvc := scrap.NewService(scrapRepo, logger)
	inventorySvc := inventory.NewService(inventoryRepo, logger)
	shiftSvc := shift.NewService(shiftRepo, logger)
	oeeSvc := oee.NewService(machineRepo, orderRepo, cycleRepo, stoppageRepo, scrapRepo, productRepo, logger)

	resolver := &apiKeyResolver{db: db}
	router := transport.NewServer(transport.Services{
		Machines:  machineSvc,
		Products:  productSvc,
		Orders:    orderSvc,
		Stoppages: stoppageSvc,
		Scrap:     scrapSvc,
		Inventory: inventorySvc,
		Shifts:    shiftSvc,
		OEE:       oeeSvc,
	}, transport.AuthMiddleware(resolver), transport.NewMetrics(), logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type apiKeyResolver struct {
	db *sqlite.DB
}

func (r *apiKeyResolver) ResolveTenant(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)
	var tenantID string
	err := r.db.QueryRowContext(ctx, `SELECT tenant_id FROM api_keys WHERE key_hash = ?`, hash).Scan(&tenantID)
	if err != nil || tenantID == "" {
		return "", fmt.Errorf("unauthorized: invalid token")
	}
	return tenantID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

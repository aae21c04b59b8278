// Package handlers holds HTTP handlers owned by the infrastructure layer.
package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/core-platform/launchpad/internal/core/ports"
)

const probeTimeout = 5 * time.Second

// HealthHandler aggregates the datastore and Zoho connector probes into one
// composite status: ok (both up), degraded (connector down, still 200), or
// down (datastore down, 503).
type HealthHandler struct {
	db   *gorm.DB
	zoho ports.ZohoClient
	log  zerolog.Logger
}

func NewHealthHandler(db *gorm.DB, zoho ports.ZohoClient, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, zoho: zoho, log: log}
}

type probeResult struct {
	Status    string `json:"status"`
	LatencyMs *int64 `json:"latency,omitempty"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Checks    struct {
		Database probeResult `json:"database"`
		Zoho     probeResult `json:"zoho"`
	} `json:"checks"`
}

// Check handles GET /api/health.
//
// @Summary      Composite health check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	// Both probes run concurrently, each bounded by its own timeout, so one
	// slow dependency cannot delay the other's result.
	var (
		wg      sync.WaitGroup
		dbCheck probeResult
		zoho    probeResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		dbCheck = h.checkDatabase(ctx)
	}()
	go func() {
		defer wg.Done()
		zoho = h.checkZoho(ctx)
	}()
	wg.Wait()

	status := "ok"
	httpStatus := http.StatusOK
	switch {
	case dbCheck.Status != "ok":
		status = "down"
		httpStatus = http.StatusServiceUnavailable
	case zoho.Status != "ok":
		status = "degraded"
	}

	resp := healthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	resp.Checks.Database = dbCheck
	resp.Checks.Zoho = zoho

	return c.JSON(httpStatus, resp)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) probeResult {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	var one int
	if err := h.db.WithContext(probeCtx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		h.log.Error().Err(err).Msg("database health check failed")
		return probeResult{Status: "down"}
	}
	latency := time.Since(start).Milliseconds()
	return probeResult{Status: "ok", LatencyMs: &latency}
}

func (h *HealthHandler) checkZoho(ctx context.Context) probeResult {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.zoho.Ping(probeCtx); err != nil {
		h.log.Warn().Err(err).Msg("zoho health check failed")
		return probeResult{Status: "down"}
	}
	latency := time.Since(start).Milliseconds()
	return probeResult{Status: "ok", LatencyMs: &latency}
}

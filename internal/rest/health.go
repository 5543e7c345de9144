package rest

import (
	"net/http"
	"shopperSpectrum/domain"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	artifacts *domain.Artifacts
	version   string
}

func NewHealthHandler(artifacts *domain.Artifacts, version string) *HealthHandler {
	return &HealthHandler{
		artifacts: artifacts,
		version:   version,
	}
}

// GET /healthz
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"version":   h.version,
		"products":  h.artifacts.Catalog.Len(),
		"source":    h.artifacts.Source,
		"loaded_at": h.artifacts.LoadedAt.Format(time.RFC3339),
	})
}

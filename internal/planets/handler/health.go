package handler

import (
	"net/http"
	"os"

	"planets/internal/planets/model"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	Env      *string
	Hostname func() (string, error)
}

func NewHealthHandler(env *string) *HealthHandler {
	return &HealthHandler{Env: env, Hostname: os.Hostname}
}

// Live handles GET /live
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, model.StatusResponse{Status: model.StatusLive})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, model.StatusResponse{Status: model.StatusReady})
}

// OS handles GET /os
func (h *HealthHandler) OS(c echo.Context) error {
	host, err := h.Hostname()
	if err != nil {
		host = "unknown"
	}
	return c.JSON(http.StatusOK, model.OSResponse{OS: host, Env: h.Env})
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"planets/internal/planets/metrics"
	"planets/internal/planets/model"
	"planets/internal/planets/service"

	"github.com/labstack/echo/v4"
)

type PlanetHandler struct {
	Service service.PlanetService
	Logger  *slog.Logger
}

func NewPlanetHandler(s service.PlanetService, logger *slog.Logger) *PlanetHandler {
	return &PlanetHandler{Service: s, Logger: logger}
}

// PostPlanet handles POST /planet
func (h *PlanetHandler) PostPlanet(c echo.Context) error {
	var req model.LookupRequest
	if err := c.Bind(&req); err != nil {
		// A body that is not JSON carries no id, which is a miss rather than a bad request.
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnsupportedMediaType {
			return badRequest(c, "Invalid body")
		}
	}

	id, ok := req.PlanetID()
	if !ok {
		metrics.RecordLookup(model.LookupInvalid)
		code, body := httpError(service.ErrPlanetNotFound)
		return c.String(code, body)
	}

	planet, err := h.Service.GetPlanet(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, service.ErrPlanetNotFound) {
			h.Logger.Error("Error fetching planet data",
				"id", id,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}
		code, body := httpError(err)
		return c.String(code, body)
	}

	return c.JSON(http.StatusOK, planet)
}

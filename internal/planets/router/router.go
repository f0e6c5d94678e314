package router

import (
	"log/slog"
	"net/http"
	"time"

	"planets/internal/planets/config"
	"planets/internal/planets/handler"
	"planets/internal/planets/metrics"
	"planets/internal/planets/model"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type Handlers struct {
	Planet *handler.PlanetHandler
	Docs   *handler.DocsHandler
	Health *handler.HealthHandler
}

// probe and scrape paths are never rate limited
var unlimitedPaths = map[string]bool{
	"/live":    true,
	"/ready":   true,
	"/metrics": true,
}

// New builds the Echo instance with the full middleware chain and routes.
func New(cfg *config.Config, h Handlers, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handler.GoJSONSerializer{}

	e.Use(middleware.Recover())
	e.Use(handler.RequestIDMiddleware)
	e.Use(handler.RequestLogger(logger))
	e.Use(metrics.Middleware())

	RegisterRoutes(e, cfg, h)
	return e
}

func RegisterRoutes(e *echo.Echo, cfg *config.Config, h Handlers) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	if cfg.RateLimitEnabled {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: func(c echo.Context) bool {
				return unlimitedPaths[c.Path()]
			},
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimitRPS),
				Burst:     cfg.RateLimitBurst,
				ExpiresIn: 3 * time.Minute,
			}),
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{
					Error: model.ErrorDetail{
						Code:      "rate_limited",
						Message:   "Too many requests",
						RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
					},
				})
			},
		}))
	}

	// Static assets from the public directory; only reads are served.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root: cfg.StaticDir,
		Skipper: func(c echo.Context) bool {
			m := c.Request().Method
			return m != http.MethodGet && m != http.MethodHead
		},
	}))

	e.File("/", cfg.IndexFile)
	e.GET("/api-docs", h.Docs.GetAPIDocs)

	e.POST("/planet", h.Planet.PostPlanet)

	e.GET("/os", h.Health.OS)
	e.GET("/live", h.Health.Live)
	e.GET("/ready", h.Health.Ready)

	e.GET("/metrics", metrics.Handler())
}

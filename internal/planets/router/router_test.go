package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planets/internal/planets/config"
	"planets/internal/planets/handler"
	"planets/internal/planets/model"
	"planets/internal/planets/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetPlanet(ctx context.Context, id int) (*model.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Planet), args.Error(1)
}

func (m *mockService) Bootstrap(ctx context.Context, seed bool) (*service.BootstrapResult, error) {
	args := m.Called(ctx, seed)
	return args.Get(0).(*service.BootstrapResult), args.Error(1)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Solar System</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('planets')"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "oas.json"), []byte(`{"openapi":"3.0.0"}`), 0o600))

	return &config.Config{
		StaticDir:        dir,
		IndexFile:        filepath.Join(dir, "index.html"),
		APIDocsFile:      filepath.Join(dir, "oas.json"),
		CORSAllowOrigins: []string{"*"},
	}
}

func newTestServer(cfg *config.Config, svc service.PlanetService) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, Handlers{
		Planet: handler.NewPlanetHandler(svc, logger),
		Docs:   handler.NewDocsHandler(cfg.APIDocsFile, logger),
		Health: handler.NewHealthHandler(nil),
	}, logger)
}

func do(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	svc := new(mockService)
	svc.On("GetPlanet", mock.Anything, 3).Return(&model.Planet{ID: 3, Name: "Earth"}, nil)
	svc.On("GetPlanet", mock.Anything, 999).Return(nil, service.ErrPlanetNotFound)
	e := newTestServer(testConfig(t), svc)

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		wantStatus   int
		wantContains string
	}{
		{"planet found", http.MethodPost, "/planet", `{"id":3}`, http.StatusOK, `"name":"Earth"`},
		{"planet missing", http.MethodPost, "/planet", `{"id":999}`, http.StatusNotFound, "Select a number from 0 - 9"},
		{"index page", http.MethodGet, "/", "", http.StatusOK, "<h1>Solar System</h1>"},
		{"static asset", http.MethodGet, "/app.js", "", http.StatusOK, "console.log"},
		{"api docs", http.MethodGet, "/api-docs", "", http.StatusOK, `"openapi":"3.0.0"`},
		{"os", http.MethodGet, "/os", "", http.StatusOK, `"env":null`},
		{"live", http.MethodGet, "/live", "", http.StatusOK, `"status":"live"`},
		{"ready", http.MethodGet, "/ready", "", http.StatusOK, `"status":"ready"`},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "planets_http_requests_total"},
		{"unknown path", http.MethodGet, "/pluto", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContains)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestCORS(t *testing.T) {
	e := newTestServer(testConfig(t), new(mockService))

	rec := do(e, http.MethodOptions, "/planet", "", map[string]string{
		echo.HeaderOrigin:                     "https://planets.example",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitEnabled = true
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 2

	svc := new(mockService)
	svc.On("GetPlanet", mock.Anything, 1).Return(&model.Planet{ID: 1, Name: "Mercury"}, nil)
	e := newTestServer(cfg, svc)

	assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/planet", `{"id":1}`, nil).Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/planet", `{"id":1}`, nil).Code)

	limited := do(e, http.MethodPost, "/planet", `{"id":1}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Contains(t, limited.Body.String(), "rate_limited")

	// Probes stay reachable while the client is throttled.
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/live", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/ready", "", nil).Code)
}

package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"planets/internal/planets/model"
	"planets/internal/planets/service"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type MockPlanetService struct {
	mock.Mock
}

func (m *MockPlanetService) GetPlanet(ctx context.Context, id int) (*model.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Planet), args.Error(1)
}

func (m *MockPlanetService) Bootstrap(ctx context.Context, seed bool) (*service.BootstrapResult, error) {
	args := m.Called(ctx, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BootstrapResult), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func SetupServer() *echo.Echo {
	e := echo.New()
	e.JSONSerializer = GoJSONSerializer{}
	e.Use(RequestIDMiddleware)
	return e
}

// PerformRequest sends body as JSON unless it is already a string, which is sent verbatim.
func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	switch b := body.(type) {
	case nil:
		bodyReader = strings.NewReader("")
	case string:
		bodyReader = strings.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		bodyReader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"os"

	"planets/internal/planets/model"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// DocsHandler serves the OpenAPI document. The file is read on every request
// so it can be replaced without a restart.
type DocsHandler struct {
	Path   string
	Logger *slog.Logger
}

func NewDocsHandler(path string, logger *slog.Logger) *DocsHandler {
	return &DocsHandler{Path: path, Logger: logger}
}

// GetAPIDocs handles GET /api-docs
func (h *DocsHandler) GetAPIDocs(c echo.Context) error {
	data, err := os.ReadFile(h.Path)
	if err != nil {
		h.Logger.Error("Error reading file", "path", h.Path, "error", err)
		return c.String(http.StatusInternalServerError, model.MsgDocsReadError)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		h.Logger.Error("Error reading file", "path", h.Path, "error", err)
		return c.String(http.StatusInternalServerError, model.MsgDocsReadError)
	}

	return c.JSONBlob(http.StatusOK, buf.Bytes())
}

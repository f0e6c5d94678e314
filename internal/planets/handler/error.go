package handler

import (
	"errors"
	"net/http"

	"planets/internal/planets/model"
	"planets/internal/planets/service"

	"github.com/labstack/echo/v4"
)

// Maps lookup errors to HTTP status and the fixed plain-text body
func httpError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrPlanetNotFound):
		return http.StatusNotFound, model.MsgPlanetNotFound
	default:
		return http.StatusInternalServerError, model.MsgPlanetError
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{
			Code:      "bad_request",
			Message:   msg,
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		},
	})
}

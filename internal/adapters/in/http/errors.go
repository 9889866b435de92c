package http

import (
	"errors"
	"net/http"

	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates domain and application errors into HTTP responses.
// Validation failures map to 400, missing objects to 404, lifecycle conflicts
// to 409, and an unknown service tier to 422; anything unrecognized is a 500.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, shipment.ErrShipmentInTerminalState),
		errors.Is(err, services.ErrEmptyLocker):
		code = http.StatusConflict
	case errors.Is(err, tariff.ErrTierIsNotRegistered):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// respondBadRequest reports a malformed or invalid request body.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a domain error onto an HTTP status and writes the error
// body. Unrecognized errors become 500 without leaking internals.
func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func statusFor(err error) int {
	var (
		valueRequired   *errs.ValueIsRequiredError
		valueInvalid    *errs.ValueIsInvalidError
		valueOutOfRange *errs.ValueIsOutOfRangeError
		notFound        *errs.ObjectNotFoundError
		staleVersion    *errs.VersionIsInvalidError
		badTransition   *errs.InvalidTransitionError
		noVehicle       *errs.VehicleUnavailableError
		noStock         *errs.InsufficientStockError
		overCapacity    *errs.CapacityExceededError
		storageDown     *errs.StorageUnavailableError
	)

	switch {
	case errors.As(err, &valueRequired),
		errors.As(err, &valueInvalid),
		errors.As(err, &valueOutOfRange):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &staleVersion),
		errors.As(err, &badTransition),
		errors.As(err, &noVehicle),
		errors.As(err, &noStock):
		return http.StatusConflict
	case errors.As(err, &overCapacity):
		return http.StatusUnprocessableEntity
	case errors.As(err, &storageDown):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("sku")

		assert.Equal(t, "sku", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: sku", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("sku", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: sku (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("order")

		assert.Equal(t, "order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: order", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("row already updated")
		err := errs.NewVersionIsInvalidErrorWithCause("order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order (cause: row already updated)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("order", "delivered", "pending")

	assert.Equal(t, "invalid state transition: order cannot move from delivered to pending", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("weight", 1200, 1000)

	assert.Equal(t, "capacity exceeded: weight requires 1200, limit is 1000", err.Error())
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestVehicleUnavailableError(t *testing.T) {
	err := errs.NewVehicleUnavailableError("7b2d", "maintenance")

	assert.Equal(t, "vehicle unavailable: vehicle 7b2d is maintenance", err.Error())
	require.ErrorIs(t, err, errs.ErrVehicleUnavailable)
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("SKU-1", 6, 4)

	assert.Equal(t, "SKU-1", err.SKU)
	assert.Equal(t, "insufficient stock: SKU-1 has 4 available, 6 requested", err.Error())
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
}

func TestStorageUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewStorageUnavailableError("orders.update", cause)

	assert.Equal(t, "storage unavailable: orders.update (cause: connection refused)", err.Error())
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("field"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("n", 5, 0, 1), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("field"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("order"), errs.ErrVersionIsInvalid)
}

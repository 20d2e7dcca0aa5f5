package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterVehicleBody is the request payload for fleet registration.
type RegisterVehicleBody struct {
	Plate          string  `json:"plate"`
	CapacityWeight float64 `json:"capacityWeight"`
	CapacityVolume float64 `json:"capacityVolume"`
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var body RegisterVehicleBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVehicleCommand(vehicleID, body.Plate, body.CapacityWeight, body.CapacityVolume)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedBody{ID: vehicleID.String()})
}

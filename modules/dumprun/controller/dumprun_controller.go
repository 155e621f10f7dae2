package controller

import (
	"github.com/YourPalZack/junk-t/core/controller"
	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/modules/dumprun/dto"
	"github.com/YourPalZack/junk-t/modules/dumprun/service"

	"github.com/labstack/echo/v4"
)

type DumpRunController struct {
	service *service.DumpRunService
	controller.BaseController
}

func NewDumpRunController(service *service.DumpRunService) *DumpRunController {
	return &DumpRunController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListRuns returns every scheduled group dump run
// @Summary List group dump runs
// @Description Returns all scheduled group dump runs, ascending by run date
// @Tags GroupDumpRun
// @Produce json
// @Success 200 {object} controller.SuccessResponse{data=[]dto.GroupDumpRunResponse}
// @Router /group-dump-runs [get]
func (c *DumpRunController) ListRuns(ctx echo.Context) error {
	runs, appErr := c.service.ListRuns(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, runs, "Group dump runs retrieved successfully")
}

// ReserveSpot books one spot on a group dump run
// @Summary Reserve a group dump spot
// @Description Validates the reservation form and claims one spot on the selected run
// @Tags GroupDumpRun
// @Accept json
// @Produce json
// @Param request body dto.ReserveSpotRequest true "Reservation form"
// @Success 201 {object} controller.SuccessResponse{data=entity.GroupDumpReservation}
// @Failure 400 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /group-dump-reservations [post]
func (c *DumpRunController) ReserveSpot(ctx echo.Context) error {
	req := new(dto.ReserveSpotRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid reservation data")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	reservation, appErr := c.service.ReserveSpot(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, reservation, "Reservation created successfully")
}

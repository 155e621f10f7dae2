package controller

import (
	"github.com/YourPalZack/junk-t/core/controller"
	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/modules/appointment/dto"
	"github.com/YourPalZack/junk-t/modules/appointment/service"

	"github.com/labstack/echo/v4"
)

type AppointmentController struct {
	service *service.AppointmentService
	controller.BaseController
}

func NewAppointmentController(service *service.AppointmentService) *AppointmentController {
	return &AppointmentController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Book records an appointment request
// @Summary Book an appointment
// @Description Validates and stores a pickup appointment request
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Appointment form"
// @Success 201 {object} controller.SuccessResponse{data=entity.Appointment}
// @Failure 400 {object} controller.ErrorResponse
// @Router /appointments [post]
func (c *AppointmentController) Book(ctx echo.Context) error {
	req := new(dto.BookAppointmentRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid appointment data")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	appointment, appErr := c.service.Book(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, appointment, "Appointment booked successfully")
}

package controller

import (
	"github.com/YourPalZack/junk-t/core/controller"
	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/modules/quote/dto"
	"github.com/YourPalZack/junk-t/modules/quote/service"

	"github.com/labstack/echo/v4"
)

type QuoteController struct {
	service *service.QuoteService
	controller.BaseController
}

func NewQuoteController(service *service.QuoteService) *QuoteController {
	return &QuoteController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Submit records a custom pricing request
// @Summary Submit quote request
// @Description Validates and stores a custom quote request
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuoteRequest true "Quote request form"
// @Success 201 {object} controller.SuccessResponse{data=entity.QuoteRequest}
// @Failure 400 {object} controller.ErrorResponse
// @Router /quote-requests [post]
func (c *QuoteController) Submit(ctx echo.Context) error {
	req := new(dto.SubmitQuoteRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid quote request data")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	quote, appErr := c.service.Submit(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, quote, "Quote request submitted successfully")
}

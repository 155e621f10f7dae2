package controller

import (
	"github.com/YourPalZack/junk-t/core/controller"
	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/modules/contact/dto"
	"github.com/YourPalZack/junk-t/modules/contact/service"

	"github.com/labstack/echo/v4"
)

type ContactController struct {
	service *service.ContactService
	controller.BaseController
}

func NewContactController(service *service.ContactService) *ContactController {
	return &ContactController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Submit records a contact-form message
// @Summary Submit contact message
// @Description Validates and stores a contact-form submission
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactRequest true "Contact form"
// @Success 201 {object} controller.SuccessResponse{data=entity.Contact}
// @Failure 400 {object} controller.ErrorResponse
// @Router /contact [post]
func (c *ContactController) Submit(ctx echo.Context) error {
	req := new(dto.SubmitContactRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid contact form data")
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	contact, appErr := c.service.Submit(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, contact, "Contact form submitted successfully")
}

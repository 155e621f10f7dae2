package router

import (
	"github.com/YourPalZack/junk-t/modules/quote/controller"

	"github.com/labstack/echo/v4"
)

type QuoteRouter struct {
	controller *controller.QuoteController
}

func NewQuoteRouter(controller *controller.QuoteController) *QuoteRouter {
	return &QuoteRouter{controller: controller}
}

func (r *QuoteRouter) Register(g *echo.Group) {
	g.POST("/quote-requests", r.controller.Submit)
}

package router

import (
	"github.com/YourPalZack/junk-t/modules/contact/controller"

	"github.com/labstack/echo/v4"
)

type ContactRouter struct {
	controller *controller.ContactController
}

func NewContactRouter(controller *controller.ContactController) *ContactRouter {
	return &ContactRouter{controller: controller}
}

func (r *ContactRouter) Register(g *echo.Group) {
	g.POST("/contact", r.controller.Submit)
}

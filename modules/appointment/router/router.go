package router

import (
	"github.com/YourPalZack/junk-t/modules/appointment/controller"

	"github.com/labstack/echo/v4"
)

type AppointmentRouter struct {
	controller *controller.AppointmentController
}

func NewAppointmentRouter(controller *controller.AppointmentController) *AppointmentRouter {
	return &AppointmentRouter{controller: controller}
}

func (r *AppointmentRouter) Register(g *echo.Group) {
	g.POST("/appointments", r.controller.Book)
}

package router

import (
	"github.com/YourPalZack/junk-t/modules/dumprun/controller"

	"github.com/labstack/echo/v4"
)

type DumpRunRouter struct {
	controller *controller.DumpRunController
}

func NewDumpRunRouter(controller *controller.DumpRunController) *DumpRunRouter {
	return &DumpRunRouter{controller: controller}
}

func (r *DumpRunRouter) Register(g *echo.Group) {
	g.GET("/group-dump-runs", r.controller.ListRuns)
	g.POST("/group-dump-reservations", r.controller.ReserveSpot)
}

package appointment

import (
	"github.com/YourPalZack/junk-t/modules/appointment/controller"
	"github.com/YourPalZack/junk-t/modules/appointment/repository"
	"github.com/YourPalZack/junk-t/modules/appointment/router"
	"github.com/YourPalZack/junk-t/modules/appointment/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group) *service.AppointmentService {
	repo := repository.NewAppointmentRepository()
	svc := service.NewAppointmentService(repo)
	ctrl := controller.NewAppointmentController(svc)

	router.NewAppointmentRouter(ctrl).Register(g)

	return svc
}

package contact

import (
	"github.com/YourPalZack/junk-t/modules/contact/controller"
	"github.com/YourPalZack/junk-t/modules/contact/repository"
	"github.com/YourPalZack/junk-t/modules/contact/router"
	"github.com/YourPalZack/junk-t/modules/contact/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group) *service.ContactService {
	repo := repository.NewContactRepository()
	svc := service.NewContactService(repo)
	ctrl := controller.NewContactController(svc)

	router.NewContactRouter(ctrl).Register(g)

	return svc
}

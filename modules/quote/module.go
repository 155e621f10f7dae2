package quote

import (
	"github.com/YourPalZack/junk-t/modules/quote/controller"
	"github.com/YourPalZack/junk-t/modules/quote/repository"
	"github.com/YourPalZack/junk-t/modules/quote/router"
	"github.com/YourPalZack/junk-t/modules/quote/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group) *service.QuoteService {
	repo := repository.NewQuoteRepository()
	svc := service.NewQuoteService(repo)
	ctrl := controller.NewQuoteController(svc)

	router.NewQuoteRouter(ctrl).Register(g)

	return svc
}

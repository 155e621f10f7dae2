package dumprun

import (
	"context"

	"github.com/YourPalZack/junk-t/core/config"
	"github.com/YourPalZack/junk-t/core/logger"
	"github.com/YourPalZack/junk-t/modules/dumprun/controller"
	"github.com/YourPalZack/junk-t/modules/dumprun/dto"
	"github.com/YourPalZack/junk-t/modules/dumprun/repository"
	"github.com/YourPalZack/junk-t/modules/dumprun/router"
	"github.com/YourPalZack/junk-t/modules/dumprun/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, seed config.SeedConfig) *service.DumpRunService {
	repo := repository.NewDumpRunRepository()
	svc := service.NewDumpRunService(repo)
	ctrl := controller.NewDumpRunController(svc)

	router.NewDumpRunRouter(ctrl).Register(g)

	seedRuns(svc, seed)

	return svc
}

// seedRuns creates the configured starting schedule. A bad entry is skipped,
// not fatal; an empty seed list is a valid empty calendar.
func seedRuns(svc *service.DumpRunService, seed config.SeedConfig) {
	ctx := context.Background()
	for _, run := range seed.Runs {
		created, appErr := svc.CreateRun(ctx, &dto.CreateRunRequest{
			RunDate:  run.Date,
			Capacity: run.Capacity,
		})
		if appErr != nil {
			logger.Warn("DumpRunModule:Seed:Skipped", "date", run.Date, "error", appErr)
			continue
		}
		logger.Info("DumpRunModule:Seed:Created",
			"run_id", created.ID,
			"run_date", created.RunDate,
			"capacity", created.Capacity,
		)
	}
}

package route

import (
	models "acdoc-dashboard/app/models/dataset"
	service "acdoc-dashboard/app/service/dashboard"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupDashboardRoutes(app *fiber.App, data *models.DashboardData, log *zap.Logger) error {
	dashboardService, err := service.NewDashboardService(data, log)
	if err != nil {
		return err
	}

	// Page
	app.Get("/", dashboardService.Index)
	app.Get("/dashboard", dashboardService.Index)

	// Export buttons, one handler per control id
	app.Get("/_export/:control", dashboardService.Export)

	// Charts API
	api := app.Group("/api/v1")
	api.Get("/charts", dashboardService.GetCharts)
	api.Get("/charts/:id", dashboardService.GetChart)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	return nil
}

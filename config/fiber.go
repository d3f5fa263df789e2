package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupFiber(cfg Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "AcDOC Dashboard",
		DisableStartupMessage: !cfg.Debug,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Debug}))
	if cfg.Debug {
		app.Use(logger.New())
	}
	return app
}

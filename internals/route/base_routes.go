package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "pastordigital_backend/internals/helpers"
)

var startedAt = time.Now()

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
		}

		return helper.Success(c, "OK", fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).String(),
		})
	})
}

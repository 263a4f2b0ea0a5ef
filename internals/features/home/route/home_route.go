package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeController "pastordigital_backend/internals/features/home/controller"
)

func HomeRoutes(router fiber.Router, db *gorm.DB) {
	controller := homeController.NewDashboardController(db)

	router.Get("/dashboard", controller.Dashboard)
}

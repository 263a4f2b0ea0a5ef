package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertaController "pastordigital_backend/internals/features/alertas/controller"
)

func AlertaRoutes(router fiber.Router, db *gorm.DB) {
	controller := alertaController.NewAlertaController(db)

	alertas := router.Group("/alertas")
	alertas.Get("/", controller.ListAlertas)
	alertas.Post("/", controller.CreateAlerta)
	alertas.Patch("/:id/lido", controller.MarcarLido)
	alertas.Patch("/:id/arquivar", controller.Arquivar)
	alertas.Delete("/:id", controller.DeleteAlerta)
}

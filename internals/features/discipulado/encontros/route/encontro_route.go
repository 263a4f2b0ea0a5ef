package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	encontroController "pastordigital_backend/internals/features/discipulado/encontros/controller"
)

func EncontroRoutes(router fiber.Router, db *gorm.DB) {
	controller := encontroController.NewEncontroController(db)

	encontros := router.Group("/encontros")
	encontros.Get("/", controller.ListEncontros)
	encontros.Post("/", controller.CreateEncontro)
	encontros.Put("/:id", controller.UpdateEncontro)
	encontros.Delete("/:id", controller.DeleteEncontro)
}

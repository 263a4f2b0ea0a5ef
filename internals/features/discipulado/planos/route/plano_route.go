package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planoController "pastordigital_backend/internals/features/discipulado/planos/controller"
)

func PlanoRoutes(router fiber.Router, db *gorm.DB) {
	controller := planoController.NewPlanoController(db)

	planos := router.Group("/planos")
	planos.Get("/", controller.ListPlanos)
	planos.Post("/", controller.CreatePlano)
	planos.Put("/:id", controller.UpdatePlano)
	planos.Delete("/:id", controller.DeletePlano)
	planos.Post("/:id/etapas", controller.CreateEtapa)
	planos.Get("/:id/etapas", controller.ListEtapas)

	etapas := router.Group("/etapas")
	etapas.Put("/:id", controller.UpdateEtapa)
	etapas.Delete("/:id", controller.DeleteEtapa)
}

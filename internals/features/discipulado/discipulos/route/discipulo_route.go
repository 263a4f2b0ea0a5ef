package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discipuloController "pastordigital_backend/internals/features/discipulado/discipulos/controller"
)

func DiscipuloRoutes(router fiber.Router, db *gorm.DB) {
	controller := discipuloController.NewDiscipuloController(db)

	discipulos := router.Group("/discipulos")
	discipulos.Get("/", controller.ListDiscipulos)
	discipulos.Post("/", controller.CreateDiscipulo)
	discipulos.Get("/mapa", controller.MapaDiscipulos)
	discipulos.Get("/:id", controller.GetDiscipulo)
	discipulos.Put("/:id", controller.UpdateDiscipulo)
	discipulos.Delete("/:id", controller.DeleteDiscipulo)
	discipulos.Patch("/:id/localizacao", controller.UpdateLocalizacao)
}

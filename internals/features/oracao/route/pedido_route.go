package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	oracaoController "pastordigital_backend/internals/features/oracao/controller"
)

func OracaoRoutes(router fiber.Router, db *gorm.DB) {
	controller := oracaoController.NewPedidoController(db)

	oracao := router.Group("/oracao")
	oracao.Get("/", controller.ListPedidos)
	oracao.Post("/", controller.CreatePedido)
	oracao.Put("/:id", controller.UpdatePedido)
	oracao.Delete("/:id", controller.DeletePedido)
}

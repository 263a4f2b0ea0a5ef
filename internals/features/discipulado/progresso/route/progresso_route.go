package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressoController "pastordigital_backend/internals/features/discipulado/progresso/controller"
)

func ProgressoRoutes(router fiber.Router, db *gorm.DB) {
	controller := progressoController.NewProgressoController(db)

	progresso := router.Group("/progresso")
	progresso.Post("/atribuir", controller.AtribuirPlano)
	progresso.Get("/discipulos", controller.ProgressoDiscipulos)
	progresso.Patch("/:id/concluir", controller.ConcluirEtapa)
	progresso.Put("/:id", controller.UpdateProgresso)

	meusPlanos := router.Group("/meus-planos")
	meusPlanos.Get("/", controller.MeusPlanos)
	meusPlanos.Post("/:planoId/solicitar-remocao", controller.SolicitarRemocaoPlano)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	grupoController "pastordigital_backend/internals/features/grupos/controller"
)

func GrupoRoutes(router fiber.Router, db *gorm.DB) {
	grupos := grupoController.NewGrupoController(db)
	reunioes := grupoController.NewReuniaoController(db)

	g := router.Group("/grupos")
	g.Get("/", grupos.ListGrupos)
	g.Post("/", grupos.CreateGrupo)
	g.Get("/buscar", grupos.BuscarGrupos)
	g.Put("/:id", grupos.UpdateGrupo)
	g.Delete("/:id", grupos.DeleteGrupo)
	g.Get("/:id/membros", grupos.ListMembros)
	g.Post("/:id/membros", grupos.AddMembro)
	g.Delete("/:id/membros/:membroId", grupos.RemoveMembro)
	g.Post("/:id/solicitar-entrada", grupos.SolicitarEntrada)

	r := router.Group("/reunioes")
	r.Get("/", reunioes.ListReunioes)
	r.Post("/", reunioes.CreateReuniao)
	r.Put("/:id", reunioes.UpdateReuniao)
	r.Delete("/:id", reunioes.DeleteReuniao)
	r.Get("/:id/presencas", reunioes.ListPresencas)
	r.Patch("/:id/presencas", reunioes.RegistrarPresencas)
}

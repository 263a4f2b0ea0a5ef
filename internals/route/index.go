package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertaRoutes "pastordigital_backend/internals/features/alertas/route"
	discipuloRoutes "pastordigital_backend/internals/features/discipulado/discipulos/route"
	encontroRoutes "pastordigital_backend/internals/features/discipulado/encontros/route"
	planoRoutes "pastordigital_backend/internals/features/discipulado/planos/route"
	progressoRoutes "pastordigital_backend/internals/features/discipulado/progresso/route"
	grupoRoutes "pastordigital_backend/internals/features/grupos/route"
	homeRoutes "pastordigital_backend/internals/features/home/route"
	oracaoRoutes "pastordigital_backend/internals/features/oracao/route"
	authRoutes "pastordigital_backend/internals/features/users/auth/route"
	authMiddleware "pastordigital_backend/internals/middlewares/auth"
)

// SetupRoutes monta a árvore de rotas:
//   - /api/auth  → registro/login, sem sessão
//   - /api/u     → tudo que exige token
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	authRoutes.AuthRoutes(app, db)

	u := app.Group("/api/u", authMiddleware.AuthMiddleware())
	homeRoutes.HomeRoutes(u, db)
	discipuloRoutes.DiscipuloRoutes(u, db)
	planoRoutes.PlanoRoutes(u, db)
	progressoRoutes.ProgressoRoutes(u, db)
	encontroRoutes.EncontroRoutes(u, db)
	oracaoRoutes.OracaoRoutes(u, db)
	alertaRoutes.AlertaRoutes(u, db)
	grupoRoutes.GrupoRoutes(u, db)
}

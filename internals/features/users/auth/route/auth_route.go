package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "pastordigital_backend/internals/features/users/auth/controller"
	middlewares "pastordigital_backend/internals/middlewares"
	authMiddleware "pastordigital_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	controller := authController.NewAuthController(db)
	auth := app.Group("/api/auth")

	auth.Post("/register", middlewares.RegisterRateLimiter(), controller.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), controller.Login)
	auth.Post("/logout", controller.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(), controller.Me)
}

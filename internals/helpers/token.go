// internals/helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromLocals lê o user_id colocado pelo middleware de auth.
// Usado tanto como id do líder quanto do discípulo logado, dependendo da rota.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	s, ok := raw.(string)
	if !ok || s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: token inválido")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user_id inválido")
	}
	return id, nil
}

// ParseUUIDParam valida um parâmetro de rota como UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" inválido")
	}
	return id, nil
}

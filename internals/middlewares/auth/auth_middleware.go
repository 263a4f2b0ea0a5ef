// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pastordigital_backend/internals/configs"
)

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header (ou cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Parse & verificação do JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Falha ao parsear token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 3) Validação de exp (com pequena tolerância de clock)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 4) user_id para os controllers
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	const prefix = "Bearer "
	if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
		return strings.TrimSpace(auth[len(prefix):]), nil
	}
	// fallback: cookie setado no login
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", errors.New("Unauthorized - No token provided")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("token sem exp")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp inválido")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expirado")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		if sub, ok2 := claims["sub"]; ok2 {
			raw = sub
		} else {
			return uuid.Nil, errors.New("claim user_id ausente")
		}
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("claim user_id não é string")
	}
	return uuid.Parse(s)
}

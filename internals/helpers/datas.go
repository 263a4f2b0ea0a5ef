// file: internals/helpers/datas.go
package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParseDataISO converte datas "AAAA-MM-DD" vindas do payload.
// Formato inválido vira 400 aqui mesmo, sem depender da tag de
// validação do DTO.
func ParseDataISO(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Data inválida; use o formato AAAA-MM-DD")
	}
	return t, nil
}

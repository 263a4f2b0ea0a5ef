package dto

import (
	"github.com/google/uuid"
)

type CreateEncontroRequest struct {
	DiscipuloID    uuid.UUID `json:"discipulo_id" validate:"required"`
	DataEncontro   string    `json:"data_encontro" validate:"required,datetime=2006-01-02"`
	Tema           *string   `json:"tema" validate:"omitempty,max=200"`
	Anotacoes      *string   `json:"anotacoes"`
	ProximosPassos *string   `json:"proximos_passos"`
}

type UpdateEncontroRequest struct {
	DataEncontro   *string `json:"data_encontro" validate:"omitempty,datetime=2006-01-02"`
	Tema           *string `json:"tema" validate:"omitempty,max=200"`
	Anotacoes      *string `json:"anotacoes"`
	ProximosPassos *string `json:"proximos_passos"`
}

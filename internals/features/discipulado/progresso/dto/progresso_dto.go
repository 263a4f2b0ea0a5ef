package dto

import (
	"time"

	"github.com/google/uuid"

	"pastordigital_backend/internals/features/discipulado/progresso/service"
)

type AtribuirPlanoRequest struct {
	DiscipuloID uuid.UUID `json:"discipulo_id" validate:"required"`
	PlanoID     uuid.UUID `json:"plano_id" validate:"required"`
}

// ConcluirEtapaRequest: updated_at opcional funciona como pré-condição
// otimista — se divergir do registro atual, 409.
type ConcluirEtapaRequest struct {
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateProgressoRequest struct {
	Status      *string    `json:"status" validate:"omitempty,oneof=Pendente 'Em Andamento' Concluído"`
	Observacoes *string    `json:"observacoes"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// DiscipuloProgressoResponse agrupa os planos agregados de um discípulo
// para o painel do líder.
type DiscipuloProgressoResponse struct {
	DiscipuloID uuid.UUID                `json:"discipulo_id"`
	Nome        string                   `json:"nome"`
	Planos      []service.PlanoProgresso `json:"planos"`
}

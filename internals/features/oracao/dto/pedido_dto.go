package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreatePedidoRequest struct {
	DiscipuloID *uuid.UUID `json:"discipulo_id"`
	Pedido      string     `json:"pedido" validate:"required,min=3"`
	Urgencia    *string    `json:"urgencia" validate:"omitempty,oneof=Baixa Média Alta"`
}

func (r *CreatePedidoRequest) Normalize() {
	r.Pedido = strings.TrimSpace(r.Pedido)
}

type UpdatePedidoRequest struct {
	Pedido      *string `json:"pedido" validate:"omitempty,min=3"`
	Status      *string `json:"status" validate:"omitempty,oneof='Em Oração' Atualizado Concluído"`
	Urgencia    *string `json:"urgencia" validate:"omitempty,oneof=Baixa Média Alta"`
	Atualizacao *string `json:"atualizacao"`
}

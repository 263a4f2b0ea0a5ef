package model

import (
	"time"

	"github.com/google/uuid"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
)

const (
	StatusEmOracao   = "Em Oração"
	StatusAtualizado = "Atualizado"
	StatusConcluido  = "Concluído"
)

const (
	UrgenciaBaixa = "Baixa"
	UrgenciaMedia = "Média"
	UrgenciaAlta  = "Alta"
)

type PedidoOracaoModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LiderID       uuid.UUID  `gorm:"column:lider_id;type:uuid;not null" json:"lider_id"`
	DiscipuloID   *uuid.UUID `gorm:"column:discipulo_id;type:uuid" json:"discipulo_id"`
	Pedido        string     `gorm:"column:pedido;not null" json:"pedido"`
	Status        string     `gorm:"column:status;not null;default:'Em Oração'" json:"status"`
	Urgencia      string     `gorm:"column:urgencia;not null;default:'Média'" json:"urgencia"`
	Atualizacao   *string    `gorm:"column:atualizacao" json:"atualizacao"`
	DataConclusao *time.Time `gorm:"column:data_conclusao" json:"data_conclusao"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Discipulo *discipuloModel.DiscipuloModel `gorm:"foreignKey:DiscipuloID" json:"discipulo,omitempty"`
}

func (PedidoOracaoModel) TableName() string {
	return "pedidos_oracao"
}

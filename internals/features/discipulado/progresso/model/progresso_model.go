package model

import (
	"time"

	"github.com/google/uuid"

	planoModel "pastordigital_backend/internals/features/discipulado/planos/model"
)

// Status de uma etapa no progresso de um discípulo.
// As transições observadas na UI são só para frente:
// Pendente / Em Andamento → Concluído.
const (
	StatusPendente    = "Pendente"
	StatusEmAndamento = "Em Andamento"
	StatusConcluido   = "Concluído"

	// status derivado de plano (agregador)
	StatusNaoIniciado = "Não Iniciado"
)

// ProgressoDiscipuloModel mapeia progresso_discipulo: uma linha por
// (discipulo, plano, etapa), criada na atribuição do plano.
type ProgressoDiscipuloModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DiscipuloID   uuid.UUID  `gorm:"column:discipulo_id;type:uuid;not null" json:"discipulo_id"`
	PlanoID       uuid.UUID  `gorm:"column:plano_id;type:uuid;not null" json:"plano_id"`
	EtapaID       uuid.UUID  `gorm:"column:etapa_id;type:uuid;not null" json:"etapa_id"`
	LiderID       uuid.UUID  `gorm:"column:lider_id;type:uuid;not null" json:"lider_id"`
	Status        string     `gorm:"column:status;not null;default:'Pendente'" json:"status"`
	DataInicio    *time.Time `gorm:"column:data_inicio" json:"data_inicio"`
	DataConclusao *time.Time `gorm:"column:data_conclusao" json:"data_conclusao"`
	Observacoes   *string    `gorm:"column:observacoes" json:"observacoes"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Plano *planoModel.PlanoDiscipuladoModel `gorm:"foreignKey:PlanoID;references:ID" json:"plano,omitempty"`
	Etapa *planoModel.EtapaPlanoModel       `gorm:"foreignKey:EtapaID;references:ID" json:"etapa,omitempty"`
}

func (ProgressoDiscipuloModel) TableName() string {
	return "progresso_discipulo"
}

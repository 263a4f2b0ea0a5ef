package model

import (
	"time"

	"github.com/google/uuid"
)

// Níveis de maturidade aceitos pela UI (a coluna é texto livre).
const (
	NivelIniciante     = "Iniciante"
	NivelIntermediario = "Intermediário"
	NivelAvancado      = "Avançado"
	NivelLider         = "Líder"
)

type PlanoDiscipuladoModel struct {
	ID                  uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LiderID             uuid.UUID `gorm:"column:lider_id;type:uuid;not null" json:"lider_id"`
	Nome                string    `gorm:"column:nome;not null" json:"nome"`
	Descricao           *string   `gorm:"column:descricao" json:"descricao"`
	NivelMaturidade     string    `gorm:"column:nivel_maturidade;not null;default:'Iniciante'" json:"nivel_maturidade"`
	DuracaoEstimadaDias *int      `gorm:"column:duracao_estimada_dias" json:"duracao_estimada_dias"`
	Ativo               bool      `gorm:"column:ativo;not null;default:true" json:"ativo"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PlanoDiscipuladoModel) TableName() string {
	return "planos_discipulado"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// EtapaPlanoModel mapeia etapas_plano. A ordem não tem unicidade no banco:
// empates são tolerados e resolvidos por sort estável (ordem, created_at).
type EtapaPlanoModel struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PlanoID              uuid.UUID `gorm:"column:plano_id;type:uuid;not null" json:"plano_id"`
	Nome                 string    `gorm:"column:nome;not null" json:"nome"`
	Descricao            *string   `gorm:"column:descricao" json:"descricao"`
	Ordem                int       `gorm:"column:ordem;not null" json:"ordem"`
	DuracaoEstimadaDias  *int      `gorm:"column:duracao_estimada_dias" json:"duracao_estimada_dias"`
	AtividadesSugeridas  *string   `gorm:"column:atividades_sugeridas" json:"atividades_sugeridas"`
	VersiculosChave      *string   `gorm:"column:versiculos_chave" json:"versiculos_chave"`
	RecursosNecessarios  *string   `gorm:"column:recursos_necessarios" json:"recursos_necessarios"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EtapaPlanoModel) TableName() string {
	return "etapas_plano"
}

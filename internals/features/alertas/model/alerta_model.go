package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de alerta usados pela UI.
const (
	TipoLembrete                = "lembrete"
	TipoAniversario             = "aniversario"
	TipoReuniao                 = "reuniao"
	TipoSolicitacaoRemocaoPlano = "solicitacao_remocao_plano"
	TipoSolicitacaoGrupo        = "solicitacao_grupo"
)

type AlertaModel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LiderID     uuid.UUID  `gorm:"column:lider_id;type:uuid;not null" json:"lider_id"`
	DiscipuloID *uuid.UUID `gorm:"column:discipulo_id;type:uuid" json:"discipulo_id"`
	Tipo        string     `gorm:"column:tipo;not null" json:"tipo"`
	Titulo      string     `gorm:"column:titulo;not null" json:"titulo"`
	Mensagem    string     `gorm:"column:mensagem;not null" json:"mensagem"`
	DataAlerta  time.Time  `gorm:"column:data_alerta;not null" json:"data_alerta"`
	Lido        bool       `gorm:"column:lido;not null;default:false" json:"lido"`
	Ativo       bool       `gorm:"column:ativo;not null;default:true" json:"ativo"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AlertaModel) TableName() string {
	return "alertas"
}

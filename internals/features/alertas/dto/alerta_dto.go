package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateAlertaRequest struct {
	DiscipuloID *uuid.UUID `json:"discipulo_id"`
	Tipo        string     `json:"tipo" validate:"required,oneof=lembrete aniversario reuniao solicitacao_remocao_plano solicitacao_grupo"`
	Titulo      string     `json:"titulo" validate:"required,min=3,max=200"`
	Mensagem    string     `json:"mensagem" validate:"required"`
	DataAlerta  *time.Time `json:"data_alerta"`
}

func (r *CreateAlertaRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Mensagem = strings.TrimSpace(r.Mensagem)
}

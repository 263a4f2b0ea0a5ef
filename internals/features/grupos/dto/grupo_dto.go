package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateGrupoRequest struct {
	Nome          string  `json:"nome" validate:"required,min=2,max=100"`
	Endereco      *string `json:"endereco" validate:"omitempty,max=255"`
	Cidade        *string `json:"cidade" validate:"omitempty,max=100"`
	Estado        *string `json:"estado" validate:"omitempty,max=50"`
	CEP           *string `json:"cep" validate:"omitempty,max=20"`
	DiaSemana     *int    `json:"dia_semana" validate:"omitempty,min=0,max=6"`
	Horario       *string `json:"horario" validate:"omitempty,datetime=15:04"`
	MaximoMembros *int    `json:"maximo_membros" validate:"omitempty,min=1,max=500"`
	Observacoes   *string `json:"observacoes"`
}

func (r *CreateGrupoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
}

type UpdateGrupoRequest struct {
	Nome          *string `json:"nome" validate:"omitempty,min=2,max=100"`
	Endereco      *string `json:"endereco" validate:"omitempty,max=255"`
	Cidade        *string `json:"cidade" validate:"omitempty,max=100"`
	Estado        *string `json:"estado" validate:"omitempty,max=50"`
	CEP           *string `json:"cep" validate:"omitempty,max=20"`
	DiaSemana     *int    `json:"dia_semana" validate:"omitempty,min=0,max=6"`
	Horario       *string `json:"horario" validate:"omitempty,datetime=15:04"`
	MaximoMembros *int    `json:"maximo_membros" validate:"omitempty,min=1,max=500"`
	Ativo         *bool   `json:"ativo"`
	Observacoes   *string `json:"observacoes"`
}

type AddMembroRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Funcao   *string   `json:"funcao" validate:"omitempty,oneof=membro auxiliar anfitriao"`
}

type SolicitarEntradaRequest struct {
	NomeGrupo string `json:"nome_grupo" validate:"omitempty,max=100"`
}

type CreateReuniaoRequest struct {
	GroupID          uuid.UUID `json:"group_id" validate:"required"`
	DataReuniao      string    `json:"data_reuniao" validate:"required,datetime=2006-01-02"`
	TemaEstudo       *string   `json:"tema_estudo" validate:"omitempty,max=200"`
	VersiculoBase    *string   `json:"versiculo_base" validate:"omitempty,max=200"`
	AnotacoesReuniao *string   `json:"anotacoes_reuniao"`
	TotalVisitantes  *int      `json:"total_visitantes" validate:"omitempty,min=0"`
	DecisoesFe       *int      `json:"decisoes_fe" validate:"omitempty,min=0"`
	Observacoes      *string   `json:"observacoes"`
}

type UpdateReuniaoRequest struct {
	DataReuniao      *string `json:"data_reuniao" validate:"omitempty,datetime=2006-01-02"`
	TemaEstudo       *string `json:"tema_estudo" validate:"omitempty,max=200"`
	VersiculoBase    *string `json:"versiculo_base" validate:"omitempty,max=200"`
	AnotacoesReuniao *string `json:"anotacoes_reuniao"`
	DecisoesFe       *int    `json:"decisoes_fe" validate:"omitempty,min=0"`
	Observacoes      *string `json:"observacoes"`
}

type PresencaItem struct {
	MemberID       uuid.UUID `json:"member_id" validate:"required"`
	Presente       bool      `json:"presente"`
	Visitante      bool      `json:"visitante"`
	MotivoAusencia *string   `json:"motivo_ausencia"`
}

type RegistrarPresencasRequest struct {
	Presencas []PresencaItem `json:"presencas" validate:"required,min=1,dive"`
}

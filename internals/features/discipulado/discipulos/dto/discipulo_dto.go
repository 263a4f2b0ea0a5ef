package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
)

type CreateDiscipuloRequest struct {
	Nome                    string   `json:"nome" validate:"required,min=2,max=100"`
	Contato                 *string  `json:"contato" validate:"omitempty,max=50"`
	Endereco                *string  `json:"endereco" validate:"omitempty,max=255"`
	Cidade                  *string  `json:"cidade" validate:"omitempty,max=100"`
	Estado                  *string  `json:"estado" validate:"omitempty,max=50"`
	CEP                     *string  `json:"cep" validate:"omitempty,max=20"`
	Latitude                *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude               *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	MaturidadeEspiritual    *string  `json:"maturidade_espiritual" validate:"omitempty,oneof=Iniciante Intermediário Avançado Líder"`
	GrupoCelula             *string  `json:"grupo_celula" validate:"omitempty,max=100"`
	DonsTalentos            *string  `json:"dons_talentos"`
	DificuldadesCrescimento *string  `json:"dificuldades_areas_crescimento"`
	DataInicioDiscipulado   *string  `json:"data_inicio_discipulado" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateDiscipuloRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	trimPtr(r.Contato)
	trimPtr(r.Cidade)
	trimPtr(r.Estado)
}

func (r CreateDiscipuloRequest) ToModel() discipuloModel.DiscipuloModel {
	m := discipuloModel.DiscipuloModel{
		Nome:                    r.Nome,
		Contato:                 r.Contato,
		Endereco:                r.Endereco,
		Cidade:                  r.Cidade,
		Estado:                  r.Estado,
		CEP:                     r.CEP,
		Latitude:                r.Latitude,
		Longitude:               r.Longitude,
		MaturidadeEspiritual:    discipuloModel.MaturidadeIniciante,
		Status:                  discipuloModel.StatusAtivo,
		GrupoCelula:             r.GrupoCelula,
		DonsTalentos:            r.DonsTalentos,
		DificuldadesCrescimento: r.DificuldadesCrescimento,
	}
	if r.MaturidadeEspiritual != nil {
		m.MaturidadeEspiritual = *r.MaturidadeEspiritual
	}
	if r.DataInicioDiscipulado != nil {
		if t, err := time.Parse("2006-01-02", *r.DataInicioDiscipulado); err == nil {
			d := datatypes.Date(t)
			m.DataInicioDiscipulado = &d
		}
	}
	return m
}

type UpdateDiscipuloRequest struct {
	Nome                    *string  `json:"nome" validate:"omitempty,min=2,max=100"`
	Contato                 *string  `json:"contato" validate:"omitempty,max=50"`
	Endereco                *string  `json:"endereco" validate:"omitempty,max=255"`
	Cidade                  *string  `json:"cidade" validate:"omitempty,max=100"`
	Estado                  *string  `json:"estado" validate:"omitempty,max=50"`
	CEP                     *string  `json:"cep" validate:"omitempty,max=20"`
	Latitude                *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude               *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	MaturidadeEspiritual    *string  `json:"maturidade_espiritual" validate:"omitempty,oneof=Iniciante Intermediário Avançado Líder"`
	Status                  *string  `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	GrupoCelula             *string  `json:"grupo_celula" validate:"omitempty,max=100"`
	DonsTalentos            *string  `json:"dons_talentos"`
	DificuldadesCrescimento *string  `json:"dificuldades_areas_crescimento"`
	DataInicioDiscipulado   *string  `json:"data_inicio_discipulado" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateDiscipuloRequest) Apply(m *discipuloModel.DiscipuloModel) {
	if r.Nome != nil {
		m.Nome = strings.TrimSpace(*r.Nome)
	}
	if r.Contato != nil {
		m.Contato = r.Contato
	}
	if r.Endereco != nil {
		m.Endereco = r.Endereco
	}
	if r.Cidade != nil {
		m.Cidade = r.Cidade
	}
	if r.Estado != nil {
		m.Estado = r.Estado
	}
	if r.CEP != nil {
		m.CEP = r.CEP
	}
	if r.Latitude != nil {
		m.Latitude = r.Latitude
	}
	if r.Longitude != nil {
		m.Longitude = r.Longitude
	}
	if r.MaturidadeEspiritual != nil {
		m.MaturidadeEspiritual = *r.MaturidadeEspiritual
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.GrupoCelula != nil {
		m.GrupoCelula = r.GrupoCelula
	}
	if r.DonsTalentos != nil {
		m.DonsTalentos = r.DonsTalentos
	}
	if r.DificuldadesCrescimento != nil {
		m.DificuldadesCrescimento = r.DificuldadesCrescimento
	}
	if r.DataInicioDiscipulado != nil {
		if t, err := time.Parse("2006-01-02", *r.DataInicioDiscipulado); err == nil {
			d := datatypes.Date(t)
			m.DataInicioDiscipulado = &d
		}
	}
}

type UpdateLocalizacaoRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Endereco  *string `json:"endereco" validate:"omitempty,max=255"`
	Cidade    *string `json:"cidade" validate:"omitempty,max=100"`
	Estado    *string `json:"estado" validate:"omitempty,max=50"`
	CEP       *string `json:"cep" validate:"omitempty,max=20"`
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

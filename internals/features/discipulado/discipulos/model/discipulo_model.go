package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusAtivo   = "Ativo"
	StatusInativo = "Inativo"
)

const (
	MaturidadeIniciante     = "Iniciante"
	MaturidadeIntermediario = "Intermediário"
	MaturidadeAvancado      = "Avançado"
	MaturidadeLider         = "Líder"
)

type DiscipuloModel struct {
	ID                    uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LiderID               uuid.UUID       `gorm:"column:lider_id;type:uuid;not null" json:"lider_id"`
	Nome                  string          `gorm:"column:nome;not null" json:"nome"`
	Contato               *string         `gorm:"column:contato" json:"contato"`
	Endereco              *string         `gorm:"column:endereco" json:"endereco"`
	Cidade                *string         `gorm:"column:cidade" json:"cidade"`
	Estado                *string         `gorm:"column:estado" json:"estado"`
	CEP                   *string         `gorm:"column:cep" json:"cep"`
	Latitude              *float64        `gorm:"column:latitude" json:"latitude"`
	Longitude             *float64        `gorm:"column:longitude" json:"longitude"`
	MaturidadeEspiritual  string          `gorm:"column:maturidade_espiritual;not null;default:'Iniciante'" json:"maturidade_espiritual"`
	Status                string          `gorm:"column:status;not null;default:'Ativo'" json:"status"`
	GrupoCelula           *string         `gorm:"column:grupo_celula" json:"grupo_celula"`
	DonsTalentos          *string         `gorm:"column:dons_talentos" json:"dons_talentos"`
	DificuldadesCrescimento *string       `gorm:"column:dificuldades_areas_crescimento" json:"dificuldades_areas_crescimento"`
	DataInicioDiscipulado *datatypes.Date `gorm:"column:data_inicio_discipulado" json:"data_inicio_discipulado"`
	LastContactAt         *time.Time      `gorm:"column:last_contact_at" json:"last_contact_at"`
	CreatedAt             time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DiscipuloModel) TableName() string {
	return "discipulos"
}

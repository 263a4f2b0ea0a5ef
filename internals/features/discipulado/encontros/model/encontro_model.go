package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
)

type EncontroModel struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LiderID        uuid.UUID      `gorm:"column:lider_id;type:uuid;not null" json:"lider_id"`
	DiscipuloID    uuid.UUID      `gorm:"column:discipulo_id;type:uuid;not null" json:"discipulo_id"`
	DataEncontro   datatypes.Date `gorm:"column:data_encontro;not null" json:"data_encontro"`
	Tema           *string        `gorm:"column:tema" json:"tema"`
	Anotacoes      *string        `gorm:"column:anotacoes" json:"anotacoes"`
	ProximosPassos *string        `gorm:"column:proximos_passos" json:"proximos_passos"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Discipulo *discipuloModel.DiscipuloModel `gorm:"foreignKey:DiscipuloID" json:"discipulo,omitempty"`
}

func (EncontroModel) TableName() string {
	return "encontros"
}

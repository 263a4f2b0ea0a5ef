package model

import (
	"time"

	"github.com/google/uuid"
)

// UsersProfileModel mapeia users_profiles. O user_id é o sujeito do JWT
// e a chave de posse (lider_id / discipulo_id) nas demais tabelas.
type UsersProfileModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;unique" json:"user_id"`
	Nome      string    `gorm:"column:nome;not null" json:"nome"`
	Email     *string   `gorm:"column:email;unique" json:"email"`
	SenhaHash string    `gorm:"column:senha_hash;not null" json:"-"`
	TipoLider string    `gorm:"column:tipo_lider;not null;default:'discipulador'" json:"tipo_lider"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UsersProfileModel) TableName() string {
	return "users_profiles"
}

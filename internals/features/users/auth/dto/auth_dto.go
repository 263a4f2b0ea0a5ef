package dto

import "time"

type RegisterRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=120"`
	Email     string `json:"email" validate:"required,email,max=160"`
	Senha     string `json:"senha" validate:"required,min=8,max=72"`
	TipoLider string `json:"tipo_lider" validate:"omitempty,oneof=pastor discipulador lider_celula"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Profile     ProfileResponse `json:"profile"`
}

type ProfileResponse struct {
	UserID    string  `json:"user_id"`
	Nome      string  `json:"nome"`
	Email     *string `json:"email"`
	TipoLider string  `json:"tipo_lider"`
}

package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pastordigital_backend/internals/configs"
	authDTO "pastordigital_backend/internals/features/users/auth/dto"
	userModel "pastordigital_backend/internals/features/users/user/model"
	helper "pastordigital_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const tokenTTL = 24 * time.Hour

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.TipoLider == "" {
		req.TipoLider = "discipulador"
	}

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar hash de senha")
	}

	profile := userModel.UsersProfileModel{
		UserID:    uuid.New(),
		Nome:      req.Nome,
		Email:     &req.Email,
		SenhaHash: string(hash),
		TipoLider: req.TipoLider,
	}

	if err := ctrl.DB.Create(&profile).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "E-mail já cadastrado")
		}
		log.Println("[ERROR] Falha ao criar perfil:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar perfil")
	}

	return ctrl.respondWithToken(c, fiber.StatusCreated, "Cadastro realizado com sucesso", profile)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var profile userModel.UsersProfileModel
	if err := ctrl.DB.Where("email = ?", req.Email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "E-mail ou senha incorretos")
		}
		log.Println("[ERROR] Login:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao autenticar")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.SenhaHash), []byte(req.Senha)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "E-mail ou senha incorretos")
	}

	return ctrl.respondWithToken(c, fiber.StatusOK, "Login realizado com sucesso", profile)
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var profile userModel.UsersProfileModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Perfil não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar perfil")
	}

	return helper.Success(c, "OK", authDTO.ProfileResponse{
		UserID:    profile.UserID.String(),
		Nome:      profile.Nome,
		Email:     profile.Email,
		TipoLider: profile.TipoLider,
	})
}

// POST /api/auth/logout — apenas derruba o cookie; o token expira sozinho.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.Success(c, "Logout realizado", nil)
}

func (ctrl *AuthController) respondWithToken(c *fiber.Ctx, code int, message string, profile userModel.UsersProfileModel) error {
	if configs.JWTSecret == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"user_id": profile.UserID.String(),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Falha ao assinar token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao gerar token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.SuccessWithCode(c, code, message, authDTO.AuthResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Profile: authDTO.ProfileResponse{
			UserID:    profile.UserID.String(),
			Nome:      profile.Nome,
			Email:     profile.Email,
			TipoLider: profile.TipoLider,
		},
	})
}

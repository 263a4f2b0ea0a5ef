package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertaDTO "pastordigital_backend/internals/features/alertas/dto"
	alertaModel "pastordigital_backend/internals/features/alertas/model"
	helper "pastordigital_backend/internals/helpers"
)

type AlertaController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewAlertaController(db *gorm.DB) *AlertaController {
	return &AlertaController{DB: db, Now: time.Now}
}

// GET /api/u/alertas?lido=&ativo=&tipo=
func (ctrl *AlertaController) ListAlertas(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	query := ctrl.DB.Model(&alertaModel.AlertaModel{}).
		Where("lider_id = ?", liderID)

	if raw := c.Query("lido"); raw != "" {
		query = query.Where("lido = ?", c.QueryBool("lido"))
	}
	if raw := c.Query("ativo"); raw != "" {
		query = query.Where("ativo = ?", c.QueryBool("ativo"))
	}
	if tipo := c.Query("tipo"); tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}

	var alertas []alertaModel.AlertaModel
	if err := query.
		Order("data_alerta DESC, created_at DESC").
		Find(&alertas).Error; err != nil {
		log.Println("[ERROR] Falha ao listar alertas:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar alertas")
	}

	return helper.Success(c, "OK", alertas)
}

// POST /api/u/alertas
func (ctrl *AlertaController) CreateAlerta(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req alertaDTO.CreateAlertaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dataAlerta := ctrl.Now()
	if req.DataAlerta != nil {
		dataAlerta = *req.DataAlerta
	}

	alerta := alertaModel.AlertaModel{
		LiderID:     liderID,
		DiscipuloID: req.DiscipuloID,
		Tipo:        req.Tipo,
		Titulo:      req.Titulo,
		Mensagem:    req.Mensagem,
		DataAlerta:  dataAlerta,
		Lido:        false,
		Ativo:       true,
	}
	if err := ctrl.DB.Create(&alerta).Error; err != nil {
		log.Println("[ERROR] Falha ao criar alerta:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar alerta")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Alerta criado com sucesso", alerta)
}

// PATCH /api/u/alertas/:id/lido
func (ctrl *AlertaController) MarcarLido(c *fiber.Ctx) error {
	return ctrl.patchFlag(c, "lido", "Alerta marcado como lido")
}

// PATCH /api/u/alertas/:id/arquivar — desativa sem apagar
func (ctrl *AlertaController) Arquivar(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	alertaID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	alerta, err := ctrl.findAlertaDoLider(alertaID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Model(alerta).Update("ativo", false).Error; err != nil {
		log.Println("[ERROR] Falha ao arquivar alerta:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao arquivar alerta")
	}

	return helper.Success(c, "Alerta arquivado com sucesso", alerta)
}

// DELETE /api/u/alertas/:id
func (ctrl *AlertaController) DeleteAlerta(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	alertaID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	alerta, err := ctrl.findAlertaDoLider(alertaID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(alerta).Error; err != nil {
		log.Println("[ERROR] Falha ao remover alerta:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover alerta")
	}

	return helper.Success(c, "Alerta excluído com sucesso", nil)
}

func (ctrl *AlertaController) patchFlag(c *fiber.Ctx, coluna, msg string) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	alertaID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	alerta, err := ctrl.findAlertaDoLider(alertaID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Model(alerta).Update(coluna, true).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar alerta:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar alerta")
	}

	return helper.Success(c, msg, alerta)
}

func (ctrl *AlertaController) findAlertaDoLider(alertaID, liderID interface{}) (*alertaModel.AlertaModel, error) {
	var alerta alertaModel.AlertaModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", alertaID, liderID).First(&alerta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Alerta não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar alerta")
	}
	return &alerta, nil
}

package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertaModel "pastordigital_backend/internals/features/alertas/model"
	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
	encontroModel "pastordigital_backend/internals/features/discipulado/encontros/model"
	oracaoModel "pastordigital_backend/internals/features/oracao/model"
	helper "pastordigital_backend/internals/helpers"
)

type DashboardController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Now: time.Now}
}

// GET /api/u/dashboard — números do painel inicial
func (ctrl *DashboardController) Dashboard(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	inicioAno := fmt.Sprintf("%d-01-01", ctrl.Now().Year())

	var totalDiscipulos int64
	if err := ctrl.DB.Model(&discipuloModel.DiscipuloModel{}).
		Where("lider_id = ? AND status = ?", liderID, discipuloModel.StatusAtivo).
		Count(&totalDiscipulos).Error; err != nil {
		log.Println("[ERROR] Falha ao contar discípulos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar painel")
	}

	var encontrosEsteAno int64
	if err := ctrl.DB.Model(&encontroModel.EncontroModel{}).
		Where("lider_id = ? AND data_encontro >= ?", liderID, inicioAno).
		Count(&encontrosEsteAno).Error; err != nil {
		log.Println("[ERROR] Falha ao contar encontros:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar painel")
	}

	var pedidosAtivos int64
	if err := ctrl.DB.Model(&oracaoModel.PedidoOracaoModel{}).
		Where("lider_id = ? AND status = ?", liderID, oracaoModel.StatusEmOracao).
		Count(&pedidosAtivos).Error; err != nil {
		log.Println("[ERROR] Falha ao contar pedidos de oração:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar painel")
	}

	var alertasNaoLidos int64
	if err := ctrl.DB.Model(&alertaModel.AlertaModel{}).
		Where("lider_id = ? AND lido = false AND ativo = true", liderID).
		Count(&alertasNaoLidos).Error; err != nil {
		log.Println("[ERROR] Falha ao contar alertas:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar painel")
	}

	// último encontro registrado; ausência não é erro
	var ultimoEncontro *encontroModel.EncontroModel
	var encontro encontroModel.EncontroModel
	if err := ctrl.DB.
		Where("lider_id = ?", liderID).
		Order("data_encontro DESC").
		First(&encontro).Error; err == nil {
		ultimoEncontro = &encontro
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_discipulos":   totalDiscipulos,
		"encontros_este_ano": encontrosEsteAno,
		"pedidos_em_oracao":  pedidosAtivos,
		"alertas_nao_lidos":  alertasNaoLidos,
		"ultimo_encontro":    ultimoEncontro,
	})
}

package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
	oracaoDTO "pastordigital_backend/internals/features/oracao/dto"
	oracaoModel "pastordigital_backend/internals/features/oracao/model"
	helper "pastordigital_backend/internals/helpers"
)

type PedidoController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewPedidoController(db *gorm.DB) *PedidoController {
	return &PedidoController{DB: db, Now: time.Now}
}

// GET /api/u/oracao?status=&urgencia=
func (ctrl *PedidoController) ListPedidos(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	query := ctrl.DB.Model(&oracaoModel.PedidoOracaoModel{}).
		Where("lider_id = ?", liderID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if urgencia := c.Query("urgencia"); urgencia != "" {
		query = query.Where("urgencia = ?", urgencia)
	}

	var pedidos []oracaoModel.PedidoOracaoModel
	if err := query.
		Preload("Discipulo").
		Order("created_at DESC").
		Find(&pedidos).Error; err != nil {
		log.Println("[ERROR] Falha ao listar pedidos de oração:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar pedidos de oração")
	}

	return helper.Success(c, "OK", pedidos)
}

// POST /api/u/oracao
func (ctrl *PedidoController) CreatePedido(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req oracaoDTO.CreatePedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.DiscipuloID != nil {
		var cnt int64
		if err := ctrl.DB.Model(&discipuloModel.DiscipuloModel{}).
			Where("id = ? AND lider_id = ?", req.DiscipuloID, liderID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar discípulo")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Discípulo não encontrado")
		}
	}

	pedido := oracaoModel.PedidoOracaoModel{
		LiderID:     liderID,
		DiscipuloID: req.DiscipuloID,
		Pedido:      req.Pedido,
		Status:      oracaoModel.StatusEmOracao,
		Urgencia:    oracaoModel.UrgenciaMedia,
	}
	if req.Urgencia != nil {
		pedido.Urgencia = *req.Urgencia
	}

	if err := ctrl.DB.Create(&pedido).Error; err != nil {
		log.Println("[ERROR] Falha ao criar pedido de oração:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar pedido de oração")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pedido de oração criado com sucesso", pedido)
}

// PUT /api/u/oracao/:id — marcar Concluído carimba data_conclusao;
// reabrir limpa o carimbo.
func (ctrl *PedidoController) UpdatePedido(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	pedidoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req oracaoDTO.UpdatePedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	pedido, err := ctrl.findPedidoDoLider(pedidoID, liderID)
	if err != nil {
		return err
	}

	if req.Pedido != nil {
		pedido.Pedido = *req.Pedido
	}
	if req.Urgencia != nil {
		pedido.Urgencia = *req.Urgencia
	}
	if req.Atualizacao != nil {
		pedido.Atualizacao = req.Atualizacao
		if req.Status == nil && pedido.Status == oracaoModel.StatusEmOracao {
			pedido.Status = oracaoModel.StatusAtualizado
		}
	}
	if req.Status != nil {
		pedido.Status = *req.Status
		if *req.Status == oracaoModel.StatusConcluido {
			if pedido.DataConclusao == nil {
				now := ctrl.Now()
				pedido.DataConclusao = &now
			}
		} else {
			pedido.DataConclusao = nil
		}
	}

	if err := ctrl.DB.Save(pedido).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar pedido de oração:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar pedido de oração")
	}

	return helper.Success(c, "Pedido de oração atualizado com sucesso", pedido)
}

// DELETE /api/u/oracao/:id
func (ctrl *PedidoController) DeletePedido(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	pedidoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	pedido, err := ctrl.findPedidoDoLider(pedidoID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(pedido).Error; err != nil {
		log.Println("[ERROR] Falha ao remover pedido de oração:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover pedido de oração")
	}

	return helper.Success(c, "Pedido de oração excluído com sucesso", nil)
}

func (ctrl *PedidoController) findPedidoDoLider(pedidoID, liderID interface{}) (*oracaoModel.PedidoOracaoModel, error) {
	var pedido oracaoModel.PedidoOracaoModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", pedidoID, liderID).First(&pedido).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pedido de oração não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar pedido de oração")
	}
	return &pedido, nil
}

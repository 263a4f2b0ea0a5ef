package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertaModel "pastordigital_backend/internals/features/alertas/model"
	discipuloDTO "pastordigital_backend/internals/features/discipulado/discipulos/dto"
	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
	discipuloService "pastordigital_backend/internals/features/discipulado/discipulos/service"
	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
	helper "pastordigital_backend/internals/helpers"
)

type DiscipuloController struct {
	DB *gorm.DB
}

func NewDiscipuloController(db *gorm.DB) *DiscipuloController {
	return &DiscipuloController{DB: db}
}

// GET /api/u/discipulos?status=&busca=&page=&per_page=
func (ctrl *DiscipuloController) ListDiscipulos(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&discipuloModel.DiscipuloModel{}).
		Where("lider_id = ?", liderID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if busca := strings.TrimSpace(c.Query("busca")); busca != "" {
		query = query.Where("nome ILIKE ?", "%"+busca+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Println("[ERROR] Falha ao contar discípulos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar discípulos")
	}

	var discipulos []discipuloModel.DiscipuloModel
	if err := query.
		Order("nome ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&discipulos).Error; err != nil {
		log.Println("[ERROR] Falha ao listar discípulos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar discípulos")
	}

	return helper.Success(c, "OK", fiber.Map{
		"discipulos": discipulos,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /api/u/discipulos
func (ctrl *DiscipuloController) CreateDiscipulo(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req discipuloDTO.CreateDiscipuloRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	discipulo := req.ToModel()
	discipulo.LiderID = liderID
	if err := ctrl.DB.Create(&discipulo).Error; err != nil {
		log.Println("[ERROR] Falha ao criar discípulo:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar discípulo")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Discípulo criado com sucesso", discipulo)
}

// GET /api/u/discipulos/:id
func (ctrl *DiscipuloController) GetDiscipulo(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	discipuloID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	discipulo, err := ctrl.findDiscipuloDoLider(discipuloID, liderID)
	if err != nil {
		return err
	}

	return helper.Success(c, "OK", discipulo)
}

// PUT /api/u/discipulos/:id
func (ctrl *DiscipuloController) UpdateDiscipulo(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	discipuloID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req discipuloDTO.UpdateDiscipuloRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	discipulo, err := ctrl.findDiscipuloDoLider(discipuloID, liderID)
	if err != nil {
		return err
	}

	req.Apply(discipulo)
	if discipulo.Nome == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nome do discípulo não pode ficar vazio")
	}

	if err := ctrl.DB.Save(discipulo).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar discípulo:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar discípulo")
	}

	return helper.Success(c, "Discípulo atualizado com sucesso", discipulo)
}

// DELETE /api/u/discipulos/:id?cascade=true
func (ctrl *DiscipuloController) DeleteDiscipulo(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	discipuloID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	cascade := c.QueryBool("cascade", false)

	discipulo, err := ctrl.findDiscipuloDoLider(discipuloID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&progressoModel.ProgressoDiscipuloModel{}).
			Where("discipulo_id = ?", discipulo.ID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar progresso vinculado")
		}
		if cnt > 0 && !cascade {
			return fiber.NewError(fiber.StatusConflict,
				"Discípulo possui progresso de discipulado; use cascade=true para remover tudo")
		}
		if cascade {
			if err := tx.Where("discipulo_id = ?", discipulo.ID).
				Delete(&progressoModel.ProgressoDiscipuloModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover progresso vinculado")
			}
		}
		if err := tx.Where("discipulo_id = ?", discipulo.ID).
			Delete(&alertaModel.AlertaModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover alertas vinculados")
		}
		if err := tx.Delete(discipulo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover discípulo")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Discípulo excluído com sucesso", nil)
}

// PATCH /api/u/discipulos/:id/localizacao
func (ctrl *DiscipuloController) UpdateLocalizacao(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	discipuloID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req discipuloDTO.UpdateLocalizacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	discipulo, err := ctrl.findDiscipuloDoLider(discipuloID, liderID)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"latitude":   req.Latitude,
		"longitude":  req.Longitude,
		"updated_at": time.Now(),
	}
	if req.Endereco != nil {
		updates["endereco"] = *req.Endereco
	}
	if req.Cidade != nil {
		updates["cidade"] = *req.Cidade
	}
	if req.Estado != nil {
		updates["estado"] = *req.Estado
	}
	if req.CEP != nil {
		updates["cep"] = *req.CEP
	}

	if err := ctrl.DB.Model(discipulo).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar localização:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar localização")
	}

	return helper.Success(c, "Localização atualizada com sucesso", discipulo)
}

// GET /api/u/discipulos/mapa — pinos agrupados por coordenada
func (ctrl *DiscipuloController) MapaDiscipulos(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var discipulos []discipuloModel.DiscipuloModel
	if err := ctrl.DB.
		Where("lider_id = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", liderID).
		Order("created_at ASC").
		Find(&discipulos).Error; err != nil {
		log.Println("[ERROR] Falha ao carregar discípulos do mapa:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar mapa")
	}

	return helper.Success(c, "OK", discipuloService.AgruparPorCoordenada(discipulos))
}

func (ctrl *DiscipuloController) findDiscipuloDoLider(discipuloID, liderID interface{}) (*discipuloModel.DiscipuloModel, error) {
	var discipulo discipuloModel.DiscipuloModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", discipuloID, liderID).First(&discipulo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Discípulo não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar discípulo")
	}
	return &discipulo, nil
}

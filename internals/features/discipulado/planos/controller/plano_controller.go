package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planoDTO "pastordigital_backend/internals/features/discipulado/planos/dto"
	planoModel "pastordigital_backend/internals/features/discipulado/planos/model"
	progressoModel "pastordigital_backend/internals/features/discipulado/progresso/model"
	helper "pastordigital_backend/internals/helpers"
)

type PlanoController struct {
	DB *gorm.DB
}

func NewPlanoController(db *gorm.DB) *PlanoController {
	return &PlanoController{DB: db}
}

// GET /api/u/planos
func (ctrl *PlanoController) ListPlanos(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var planos []planoModel.PlanoDiscipuladoModel
	if err := ctrl.DB.
		Where("lider_id = ?", liderID).
		Order("created_at DESC").
		Find(&planos).Error; err != nil {
		log.Println("[ERROR] Falha ao listar planos:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar planos")
	}

	return helper.Success(c, "OK", planos)
}

// POST /api/u/planos
func (ctrl *PlanoController) CreatePlano(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req planoDTO.CreatePlanoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	plano := req.ToModel(liderID)
	if err := ctrl.DB.Create(&plano).Error; err != nil {
		log.Println("[ERROR] Falha ao criar plano:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar plano")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Plano criado com sucesso", plano)
}

// PUT /api/u/planos/:id
func (ctrl *PlanoController) UpdatePlano(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	planoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req planoDTO.UpdatePlanoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	plano, err := ctrl.findPlanoDoLider(planoID, liderID)
	if err != nil {
		return err
	}

	req.Apply(plano)
	if plano.Nome == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nome do plano não pode ficar vazio")
	}

	if err := ctrl.DB.Save(plano).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar plano:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar plano")
	}

	return helper.Success(c, "Plano atualizado com sucesso", plano)
}

// DELETE /api/u/planos/:id?cascade=true
// Sem cascade, bloqueia enquanto houver progresso referenciando o plano —
// a origem deixava registros órfãos, aqui a política é explícita.
func (ctrl *PlanoController) DeletePlano(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	planoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	cascade := c.QueryBool("cascade", false)

	plano, err := ctrl.findPlanoDoLider(planoID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&progressoModel.ProgressoDiscipuloModel{}).
			Where("plano_id = ?", plano.ID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar progresso vinculado")
		}
		if cnt > 0 && !cascade {
			return fiber.NewError(fiber.StatusConflict,
				"Plano possui progresso de discípulos; use cascade=true para remover tudo")
		}
		if cascade {
			if err := tx.Where("plano_id = ?", plano.ID).
				Delete(&progressoModel.ProgressoDiscipuloModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover progresso vinculado")
			}
		}
		if err := tx.Where("plano_id = ?", plano.ID).
			Delete(&planoModel.EtapaPlanoModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover etapas")
		}
		if err := tx.Delete(plano).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover plano")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Plano excluído com sucesso", nil)
}

// POST /api/u/planos/:id/etapas
func (ctrl *PlanoController) CreateEtapa(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	planoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req planoDTO.CreateEtapaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := ctrl.findPlanoDoLider(planoID, liderID); err != nil {
		return err
	}

	etapa := req.ToModel(planoID)
	if err := ctrl.DB.Create(&etapa).Error; err != nil {
		log.Println("[ERROR] Falha ao criar etapa:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar etapa")
	}

	// ordem repetida é tolerada, mas avisamos
	etapas, err := ctrl.listEtapasOrdenadas(planoID)
	if err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Etapa criada com sucesso", fiber.Map{
		"etapa": etapa,
		"aviso": planoDTO.AvisoOrdemDuplicada(etapas),
	})
}

// GET /api/u/planos/:id/etapas — sempre ordenado por (ordem, created_at)
func (ctrl *PlanoController) ListEtapas(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	planoID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := ctrl.findPlanoDoLider(planoID, liderID); err != nil {
		return err
	}

	etapas, err := ctrl.listEtapasOrdenadas(planoID)
	if err != nil {
		return err
	}

	return helper.Success(c, "OK", planoDTO.EtapasResponse{
		Etapas: etapas,
		Aviso:  planoDTO.AvisoOrdemDuplicada(etapas),
	})
}

// PUT /api/u/etapas/:id
func (ctrl *PlanoController) UpdateEtapa(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	etapaID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req planoDTO.UpdateEtapaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	etapa, err := ctrl.findEtapaDoLider(etapaID, liderID)
	if err != nil {
		return err
	}

	req.Apply(etapa)
	if err := ctrl.DB.Save(etapa).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar etapa:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar etapa")
	}

	return helper.Success(c, "Etapa atualizada com sucesso", etapa)
}

// DELETE /api/u/etapas/:id?cascade=true
func (ctrl *PlanoController) DeleteEtapa(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	etapaID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	cascade := c.QueryBool("cascade", false)

	etapa, err := ctrl.findEtapaDoLider(etapaID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&progressoModel.ProgressoDiscipuloModel{}).
			Where("etapa_id = ?", etapa.ID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao verificar progresso vinculado")
		}
		if cnt > 0 && !cascade {
			return fiber.NewError(fiber.StatusConflict,
				"Etapa possui progresso de discípulos; use cascade=true para remover tudo")
		}
		if cascade {
			if err := tx.Where("etapa_id = ?", etapa.ID).
				Delete(&progressoModel.ProgressoDiscipuloModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover progresso vinculado")
			}
		}
		if err := tx.Delete(etapa).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover etapa")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.Success(c, "Etapa excluída com sucesso", nil)
}

/* ================= helpers internos ================= */

func (ctrl *PlanoController) findPlanoDoLider(planoID, liderID interface{}) (*planoModel.PlanoDiscipuladoModel, error) {
	var plano planoModel.PlanoDiscipuladoModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", planoID, liderID).First(&plano).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Plano não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar plano")
	}
	return &plano, nil
}

func (ctrl *PlanoController) findEtapaDoLider(etapaID, liderID interface{}) (*planoModel.EtapaPlanoModel, error) {
	var etapa planoModel.EtapaPlanoModel
	if err := ctrl.DB.
		Joins("JOIN planos_discipulado p ON p.id = etapas_plano.plano_id").
		Where("etapas_plano.id = ? AND p.lider_id = ?", etapaID, liderID).
		First(&etapa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Etapa não encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar etapa")
	}
	return &etapa, nil
}

func (ctrl *PlanoController) listEtapasOrdenadas(planoID interface{}) ([]planoModel.EtapaPlanoModel, error) {
	var etapas []planoModel.EtapaPlanoModel
	if err := ctrl.DB.
		Where("plano_id = ?", planoID).
		Order("ordem ASC, created_at ASC").
		Find(&etapas).Error; err != nil {
		log.Println("[ERROR] Falha ao listar etapas:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar etapas")
	}
	return etapas, nil
}

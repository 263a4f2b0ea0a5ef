package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	discipuloModel "pastordigital_backend/internals/features/discipulado/discipulos/model"
	encontroDTO "pastordigital_backend/internals/features/discipulado/encontros/dto"
	encontroModel "pastordigital_backend/internals/features/discipulado/encontros/model"
	helper "pastordigital_backend/internals/helpers"
)

type EncontroController struct {
	DB *gorm.DB
}

func NewEncontroController(db *gorm.DB) *EncontroController {
	return &EncontroController{DB: db}
}

// GET /api/u/encontros?discipulo_id=&page=&per_page=
func (ctrl *EncontroController) ListEncontros(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&encontroModel.EncontroModel{}).
		Where("lider_id = ?", liderID)

	if raw := c.Query("discipulo_id"); raw != "" {
		discipuloID, errParse := uuid.Parse(raw)
		if errParse != nil {
			return fiber.NewError(fiber.StatusBadRequest, "discipulo_id inválido")
		}
		query = query.Where("discipulo_id = ?", discipuloID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Println("[ERROR] Falha ao contar encontros:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar encontros")
	}

	var encontros []encontroModel.EncontroModel
	if err := query.
		Preload("Discipulo").
		Order("data_encontro DESC, created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&encontros).Error; err != nil {
		log.Println("[ERROR] Falha ao listar encontros:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar encontros")
	}

	return helper.Success(c, "OK", fiber.Map{
		"encontros":  encontros,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /api/u/encontros
// Registrar um encontro também renova o last_contact_at do discípulo.
func (ctrl *EncontroController) CreateEncontro(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var req encontroDTO.CreateEncontroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var discipulo discipuloModel.DiscipuloModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", req.DiscipuloID, liderID).
		First(&discipulo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Discípulo não encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar discípulo")
	}

	dataEncontro, err := helper.ParseDataISO(req.DataEncontro)
	if err != nil {
		return err
	}
	encontro := encontroModel.EncontroModel{
		LiderID:        liderID,
		DiscipuloID:    req.DiscipuloID,
		DataEncontro:   datatypes.Date(dataEncontro),
		Tema:           req.Tema,
		Anotacoes:      req.Anotacoes,
		ProximosPassos: req.ProximosPassos,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&encontro).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao registrar encontro")
		}
		now := time.Now()
		if err := tx.Model(&discipuloModel.DiscipuloModel{}).
			Where("id = ?", discipulo.ID).
			Update("last_contact_at", now).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar último contato")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Encontro registrado com sucesso", encontro)
}

// PUT /api/u/encontros/:id
func (ctrl *EncontroController) UpdateEncontro(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	encontroID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req encontroDTO.UpdateEncontroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido: "+err.Error())
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	encontro, err := ctrl.findEncontroDoLider(encontroID, liderID)
	if err != nil {
		return err
	}

	if req.DataEncontro != nil {
		t, errParse := helper.ParseDataISO(*req.DataEncontro)
		if errParse != nil {
			return errParse
		}
		encontro.DataEncontro = datatypes.Date(t)
	}
	if req.Tema != nil {
		encontro.Tema = req.Tema
	}
	if req.Anotacoes != nil {
		encontro.Anotacoes = req.Anotacoes
	}
	if req.ProximosPassos != nil {
		encontro.ProximosPassos = req.ProximosPassos
	}

	if err := ctrl.DB.Save(encontro).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar encontro:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar encontro")
	}

	return helper.Success(c, "Encontro atualizado com sucesso", encontro)
}

// DELETE /api/u/encontros/:id
func (ctrl *EncontroController) DeleteEncontro(c *fiber.Ctx) error {
	liderID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	encontroID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	encontro, err := ctrl.findEncontroDoLider(encontroID, liderID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(encontro).Error; err != nil {
		log.Println("[ERROR] Falha ao remover encontro:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover encontro")
	}

	return helper.Success(c, "Encontro excluído com sucesso", nil)
}

func (ctrl *EncontroController) findEncontroDoLider(encontroID, liderID interface{}) (*encontroModel.EncontroModel, error) {
	var encontro encontroModel.EncontroModel
	if err := ctrl.DB.Where("id = ? AND lider_id = ?", encontroID, liderID).First(&encontro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Encontro não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar encontro")
	}
	return &encontro, nil
}
